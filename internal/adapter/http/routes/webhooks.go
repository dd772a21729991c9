package routes

import (
	"revenda_veiculos/internal/adapter/http/handlers"
	"revenda_veiculos/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

// addWebhookRoutes registers the provider callbacks, throttled per sender
// when a limiter is given.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler, limiter *middleware.WebhookLimiter) {
	webhooks := rg.Group(PathWebhooks)
	if limiter != nil {
		webhooks.Use(limiter.Middleware())
	}
	{
		webhooks.POST("/payments/:payment_code", h.PaymentWebhook)
		webhooks.POST("/mercadopago", h.MercadoPagoNotification)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
