package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer.
//
// Specific errors wrap one of the roots below so callers (the HTTP layer in
// particular) can classify with errors.Is without knowing every sentinel.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrInvalidCpf         = fmt.Errorf("%w: invalid cpf", ErrValidation)
	ErrInvalidName        = fmt.Errorf("%w: name is required", ErrValidation)
	ErrInvalidEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidBrand       = fmt.Errorf("%w: brand is required", ErrValidation)
	ErrInvalidModel       = fmt.Errorf("%w: model is required", ErrValidation)
	ErrInvalidColor       = fmt.Errorf("%w: color is required", ErrValidation)
	ErrInvalidYear        = fmt.Errorf("%w: year out of range", ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrInvalidVehicleID   = fmt.Errorf("%w: invalid vehicle id", ErrValidation)
	ErrInvalidClientID    = fmt.Errorf("%w: invalid client id", ErrValidation)
	ErrInvalidSaleID      = fmt.Errorf("%w: invalid sale id", ErrValidation)
	ErrInvalidPaymentCode = fmt.Errorf("%w: invalid payment code", ErrValidation)

	ErrVehicleNotFound = fmt.Errorf("%w: vehicle not found", ErrNotFound)
	ErrClientNotFound  = fmt.Errorf("%w: client not found", ErrNotFound)
	ErrSaleNotFound    = fmt.Errorf("%w: sale not found", ErrNotFound)

	ErrVehicleAlreadySold  = fmt.Errorf("%w: vehicle already sold", ErrConflict)
	ErrVehicleSoldReadOnly = fmt.Errorf("%w: sold vehicle cannot be edited", ErrConflict)
	ErrCpfAlreadyExists    = fmt.Errorf("%w: cpf already registered", ErrConflict)
	ErrDuplicateKey        = fmt.Errorf("%w: unique constraint violated", ErrConflict)
	ErrConcurrentUpdate    = fmt.Errorf("%w: entity modified concurrently", ErrConflict)

	ErrInvalidPaymentStatus = fmt.Errorf("%w: status must be 'paid' or 'canceled'", ErrInvalidArgument)
	ErrInvalidVehicleStatus = fmt.Errorf("%w: status must be 'available' or 'sold'", ErrInvalidArgument)
)
