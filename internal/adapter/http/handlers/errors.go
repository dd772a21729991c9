package handlers

import (
	"errors"
	"net/http"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase"
	"revenda_veiculos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapError translates the domain error taxonomy into HTTP errors. Specific
// sentinels are matched before the roots they wrap.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidCpf):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "Invalid CPF", http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Status must be 'paid' or 'canceled'", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_ARGUMENT", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, entities.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrVehicleAlreadySold):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_SOLD", "Vehicle already sold or reserved by another sale", http.StatusConflict)
	case errors.Is(err, entities.ErrVehicleSoldReadOnly):
		return pkg.NewDomainErrorSimple("VEHICLE_SOLD", "Sold vehicles cannot be edited", http.StatusConflict)
	case errors.Is(err, entities.ErrCpfAlreadyExists):
		return pkg.NewDomainErrorSimple("CPF_ALREADY_EXISTS", "CPF already registered", http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Conflict", http.StatusConflict)

	case errors.Is(err, usecase.ErrPaymentProviderNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("[http][handler] request failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
