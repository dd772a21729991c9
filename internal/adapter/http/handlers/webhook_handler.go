package handlers

import (
	"net/http"

	"revenda_veiculos/internal/adapter/http/dto/request"
	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives payment provider notifications. Every accepted
// notification answers 202, including unknown payment codes, so providers
// stop retrying.
type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// PaymentWebhook godoc
// @Summary      Apply a payment status notification
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payment_code  path      string                         true  "Payment code"
// @Param        body          body      request.PaymentWebhookRequest  true  "Notification"
// @Success      202           {object}  response.WebhookAckResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Failure      429           {object}  pkg.HTTPError
// @Router       /webhooks/payments/{payment_code} [post]
func (h *WebhookHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	if _, err := h.usecase.ApplyPaymentWebhook(c.Request.Context(), c.Param("payment_code"), payload.Status, payload.Provider); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, response.WebhookAccepted())
}

// MercadoPagoNotification godoc
// @Summary      Apply a Mercado Pago payment notification
// @Description  Non-payment topics are acknowledged and ignored.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body      request.MercadoPagoNotificationRequest  true  "Notification"
// @Success      202   {object}  response.WebhookAckResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoNotification(c *gin.Context) {
	var payload request.MercadoPagoNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	if !payload.IsPayment() {
		logger.FromContext(c.Request.Context()).Info("[webhook][handler] topic ignored", zap.String("type", payload.Type))
		c.JSON(http.StatusAccepted, response.WebhookAccepted())
		return
	}

	if _, err := h.usecase.ApplyProviderNotification(c.Request.Context(), payload.ResolvePaymentID()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, response.WebhookAccepted())
}
