package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestVehicleRequest_DecodesPriceAsStringOrNumber(t *testing.T) {
	for _, body := range []string{
		`{"brand":"VW","model":"Gol","year":2019,"color":"Azul","price":"50000.00"}`,
		`{"brand":"VW","model":"Gol","year":2019,"color":"Azul","price":50000.00}`,
	} {
		var r VehicleRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data := r.ToVehicleData()
		if !data.Price.Equal(decimal.NewFromInt(50000)) || data.Year != 2019 || data.Brand != "VW" {
			t.Fatalf("unexpected data %+v", data)
		}
	}
}

func TestSaleCreateRequest_ToInput(t *testing.T) {
	r := SaleCreateRequest{VehicleID: " v-1 ", BuyerCpf: "529.982.247-25"}
	in := r.ToInput()
	if in.VehicleID != "v-1" || !in.SaleDate.IsZero() {
		t.Fatalf("unexpected input %+v", in)
	}

	date := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r.SaleDate = &date
	if got := r.ToInput().SaleDate; !got.Equal(date) {
		t.Fatalf("expected %v, got %v", date, got)
	}
}

func TestMercadoPagoNotificationRequest_ResolvePaymentID(t *testing.T) {
	cases := map[string]string{
		`{"type":"payment","data":{"id":"123"}}`: "123",
		`{"type":"payment","data":{"id":456}}`:   "456",
		`{"type":"payment","data":{"id":" 7 "}}`: "7",
		`{"type":"payment","data":{}}`:           "",
		`{"type":"payment","data":{"id":null}}`:  "",
		`{"type":"payment","data":{"id":[1,2]}}`: "",
	}
	for body, want := range cases {
		var r MercadoPagoNotificationRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsPayment() {
			t.Fatalf("expected payment notification for %s", body)
		}
		if got := r.ResolvePaymentID(); got != want {
			t.Fatalf("%s: expected %q, got %q", body, want, got)
		}
	}

	if (MercadoPagoNotificationRequest{Type: "merchant_order"}).IsPayment() {
		t.Fatalf("merchant_order is not a payment notification")
	}
}
