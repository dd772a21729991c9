package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VehicleStatus tracks availability for sale.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusSold      VehicleStatus = "sold"
)

const minVehicleYear = 1950

// ParseVehicleStatus normalizes a status filter token.
func ParseVehicleStatus(raw string) (VehicleStatus, error) {
	switch VehicleStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case VehicleStatusAvailable:
		return VehicleStatusAvailable, nil
	case VehicleStatusSold:
		return VehicleStatusSold, nil
	default:
		return "", ErrInvalidVehicleStatus
	}
}

// Vehicle is a car in the dealership stock.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
type Vehicle struct {
	Base
	Brand  string          `json:"brand"`
	Model  string          `json:"model"`
	Year   int             `json:"year"`
	Color  string          `json:"color"`
	Price  decimal.Decimal `json:"price"`
	Status VehicleStatus   `json:"status"`
}

// VehicleData is the editable part of a Vehicle.
type VehicleData struct {
	Brand string
	Model string
	Year  int
	Color string
	Price decimal.Decimal
}

func NewVehicle(data VehicleData) (*Vehicle, error) {
	v := &Vehicle{
		Base:   newBase(),
		Status: VehicleStatusAvailable,
	}
	if err := v.apply(data); err != nil {
		return nil, err
	}
	return v, nil
}

// Update overwrites every editable field. Sold vehicles are read-only.
func (v *Vehicle) Update(data VehicleData) error {
	if v.IsSold() {
		return ErrVehicleSoldReadOnly
	}
	if err := v.apply(data); err != nil {
		return err
	}
	v.touch()
	return nil
}

// MarkSold reports whether the status actually changed.
func (v *Vehicle) MarkSold() bool {
	return v.setStatus(VehicleStatusSold)
}

// MarkAvailable reports whether the status actually changed.
func (v *Vehicle) MarkAvailable() bool {
	return v.setStatus(VehicleStatusAvailable)
}

func (v *Vehicle) IsSold() bool {
	return v.Status == VehicleStatusSold
}

func (v *Vehicle) setStatus(status VehicleStatus) bool {
	if v.Status == status {
		return false
	}
	v.Status = status
	v.touch()
	return true
}

func (v *Vehicle) apply(data VehicleData) error {
	if err := validateVehicleData(data); err != nil {
		return err
	}
	v.Brand = strings.TrimSpace(data.Brand)
	v.Model = strings.TrimSpace(data.Model)
	v.Year = data.Year
	v.Color = strings.TrimSpace(data.Color)
	v.Price = data.Price
	return nil
}

func validateVehicleData(data VehicleData) error {
	switch {
	case strings.TrimSpace(data.Brand) == "":
		return ErrInvalidBrand
	case strings.TrimSpace(data.Model) == "":
		return ErrInvalidModel
	case strings.TrimSpace(data.Color) == "":
		return ErrInvalidColor
	case data.Year < minVehicleYear || data.Year > now().Year()+1:
		return ErrInvalidYear
	case !data.Price.IsPositive():
		return ErrInvalidPrice
	}
	return nil
}
