package handlers

import (
	"net/http"

	"revenda_veiculos/internal/adapter/http/dto/request"
	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateSale godoc
// @Summary      Start a sale
// @Description  Reserves the vehicle for the buyer and opens a pending payment. The payment code in the response is what the provider reports back on the webhook.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      request.SaleCreateRequest  true  "Sale"
// @Success      201   {object}  response.SaleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.SaleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	sale, err := h.usecase.CreateSale(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// GetSale godoc
// @Summary      Get a sale with its payment
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.SaleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}
