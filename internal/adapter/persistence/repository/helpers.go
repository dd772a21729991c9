package repository

import (
	"fmt"
	"time"

	"revenda_veiculos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Unique guard keys. Each guard item maps a unique value to the id of the
// entity that owns it.
func clientCpfKey(cpf entities.Cpf) string { return "client_cpf#" + cpf.String() }
func paymentCodeKey(code string) string { return "payment_code#" + code }
func saleVehicleKey(vehicleID string) string { return "sale_vehicle#" + vehicleID }

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored %s %q: %w", field, s, err)
	}
	return t, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stored %s %q: %w", field, s, err)
	}
	return d, nil
}
