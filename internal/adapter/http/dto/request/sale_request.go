package request

import (
	"strings"
	"time"

	"revenda_veiculos/internal/usecase"
)

// SaleCreateRequest starts a sale. SaleDate defaults to now when omitted.
type SaleCreateRequest struct {
	VehicleID string     `json:"vehicle_id" example:"6f1c2d9e-1b0a-4c55-9d43-0d7b1f1a2b3c"`
	BuyerCpf  string     `json:"buyer_cpf" example:"529.982.247-25"`
	SaleDate  *time.Time `json:"sale_date,omitempty" example:"2025-03-01T12:00:00Z"`
}

func (r SaleCreateRequest) ToInput() usecase.CreateSaleInput {
	in := usecase.CreateSaleInput{
		VehicleID: strings.TrimSpace(r.VehicleID),
		BuyerCpf:  r.BuyerCpf,
	}
	if r.SaleDate != nil {
		in.SaleDate = *r.SaleDate
	}
	return in
}
