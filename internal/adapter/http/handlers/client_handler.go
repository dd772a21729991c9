package handlers

import (
	"net/http"

	"revenda_veiculos/internal/adapter/http/dto/request"
	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler manages registered buyers.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      request.ClientCreateRequest  true  "Client"
// @Success      201   {object}  response.ClientResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Email, payload.Cpf)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient godoc
// @Summary      Edit a client's contact data
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Client ID"
// @Param        body  body      request.ClientUpdateRequest  true  "Client"
// @Success      200   {object}  response.ClientResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}
