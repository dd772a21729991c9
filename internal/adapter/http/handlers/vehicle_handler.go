package handlers

import (
	"net/http"

	"revenda_veiculos/internal/adapter/http/dto/request"
	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes the vehicle catalog.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// CreateVehicle godoc
// @Summary      Register a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      request.VehicleRequest  true  "Vehicle"
// @Success      201   {object}  response.VehicleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	v, err := h.usecase.Create(c.Request.Context(), payload.ToVehicleData())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

// UpdateVehicle godoc
// @Summary      Edit an available vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Vehicle ID"
// @Param        body  body      request.VehicleRequest  true  "Vehicle"
// @Success      200   {object}  response.VehicleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	v, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToVehicleData())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// GetVehicle godoc
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id   path      string  true  "Vehicle ID"
// @Success      200  {object}  response.VehicleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// ListVehicles godoc
// @Summary      List vehicles by status, cheapest first
// @Tags         vehicles
// @Produce      json
// @Param        status  query     string  false  "available (default) or sold"
// @Success      200     {array}   response.VehicleResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	status := entities.VehicleStatusAvailable
	if raw, ok := c.GetQuery("status"); ok {
		parsed, err := entities.ParseVehicleStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		status = parsed
	}

	vs, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vs))
}
