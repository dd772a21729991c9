package response

import (
	"testing"
	"time"

	"revenda_veiculos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromVehicle(t *testing.T) {
	now := time.Now().UTC()
	v := &entities.Vehicle{
		Base:   entities.Base{ID: "v-1", Version: 1, CreatedAt: now, UpdatedAt: now},
		Brand:  "Toyota",
		Model:  "Corolla",
		Year:   2022,
		Color:  "Prata",
		Price:  decimal.RequireFromString("50000"),
		Status: entities.VehicleStatusAvailable,
	}

	res := FromVehicle(v)
	if res.ID != "v-1" || res.Price != "50000.00" || res.Status != "available" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	list := FromVehicles(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestFromSale(t *testing.T) {
	cpf, err := entities.ParseCpf("52998224725")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := &entities.Sale{
		Base:       entities.Base{ID: "s-1"},
		VehicleID:  "v-1",
		ClientID:   "c-1",
		BuyerCpf:   cpf,
		TotalPrice: decimal.RequireFromString("50000"),
		Vehicle:    &entities.Vehicle{Status: entities.VehicleStatusSold},
		Payment: &entities.Payment{
			Code:     "abc",
			Amount:   decimal.RequireFromString("50000"),
			Status:   entities.PaymentStatusPaid,
			Provider: "MercadoPago",
		},
	}

	res := FromSale(s)
	if res.BuyerCpf != "529.982.247-25" || res.TotalPrice != "50000.00" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.VehicleStatus != "sold" {
		t.Fatalf("expected sold vehicle, got %q", res.VehicleStatus)
	}
	if res.Payment.Code != "abc" || res.Payment.Status != "paid" || res.Payment.Amount != "50000.00" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
}

func TestFromClient(t *testing.T) {
	cpf, err := entities.ParseCpf("52998224725")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := FromClient(&entities.Client{Base: entities.Base{ID: "c-1"}, Name: "Ana", Email: "ana@example.com", Cpf: cpf})
	if res.Cpf != "529.982.247-25" || res.Name != "Ana" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
