package request

import (
	"revenda_veiculos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// VehicleRequest is the payload for creating and editing a vehicle. Price
// accepts a JSON number or a decimal string.
type VehicleRequest struct {
	Brand string          `json:"brand" example:"Toyota"`
	Model string          `json:"model" example:"Corolla"`
	Year  int             `json:"year" example:"2022"`
	Color string          `json:"color" example:"Prata"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"50000.00"`
}

func (r VehicleRequest) ToVehicleData() entities.VehicleData {
	return entities.VehicleData{
		Brand: r.Brand,
		Model: r.Model,
		Year:  r.Year,
		Color: r.Color,
		Price: r.Price,
	}
}
