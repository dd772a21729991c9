package response

import (
	"time"

	"revenda_veiculos/internal/domain/entities"
)

type PaymentResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code" example:"3f2b8c0d9e6a4b1c8d7e6f5a4b3c2d1e"`
	Amount   string `json:"amount" example:"50000.00"`
	Status   string `json:"status" example:"pending"`
	Provider string `json:"provider,omitempty"`
}

type SaleResponse struct {
	ID            string          `json:"id"`
	VehicleID     string          `json:"vehicle_id"`
	ClientID      string          `json:"client_id"`
	BuyerCpf      string          `json:"buyer_cpf" example:"529.982.247-25"`
	SaleDate      time.Time       `json:"sale_date"`
	TotalPrice    string          `json:"total_price" example:"50000.00"`
	Canceled      bool            `json:"canceled"`
	VehicleStatus string          `json:"vehicle_status,omitempty" example:"available"`
	Payment       PaymentResponse `json:"payment"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromSale(s *entities.Sale) SaleResponse {
	res := SaleResponse{
		ID:         s.ID,
		VehicleID:  s.VehicleID,
		ClientID:   s.ClientID,
		BuyerCpf:   s.BuyerCpf.Formatted(),
		SaleDate:   s.SaleDate,
		TotalPrice: s.TotalPrice.StringFixed(2),
		Canceled:   s.Canceled,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Vehicle != nil {
		res.VehicleStatus = string(s.Vehicle.Status)
	}
	if p := s.Payment; p != nil {
		res.Payment = PaymentResponse{
			ID:       p.ID,
			Code:     p.Code,
			Amount:   p.Amount.StringFixed(2),
			Status:   string(p.Status),
			Provider: p.Provider,
		}
	}
	return res
}
