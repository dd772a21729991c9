package entities

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment outcome reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// ParsePaymentStatus normalizes a webhook status token. Only the two
// terminal statuses can be notified.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentStatusPaid:
		return PaymentStatusPaid, nil
	case PaymentStatusCanceled:
		return PaymentStatusCanceled, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCanceled
}

// Payment is owned by exactly one Sale and created together with it.
//
// Code is the opaque correlation key handed to the payment provider; webhook
// notifications reference it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - unique guard: payment_code#<code> -> sale_id
type Payment struct {
	Base
	SaleID   string          `json:"sale_id"`
	Code     string          `json:"code"`
	Amount   decimal.Decimal `json:"amount"`
	Status   PaymentStatus   `json:"status"`
	Provider string          `json:"provider,omitempty"`
}

func newPayment(saleID string, amount decimal.Decimal) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		Base:   newBase(),
		SaleID: saleID,
		Code:   newPaymentCode(),
		Amount: amount,
		Status: PaymentStatusPending,
	}, nil
}

// ApplyStatus overwrites the status unless it is already current, in which
// case the call is a no-op. A non-empty provider replaces the stored label.
// It reports whether anything changed.
func (p *Payment) ApplyStatus(status PaymentStatus, provider string) bool {
	if p.Status == status {
		return false
	}
	p.Status = status
	if provider = strings.TrimSpace(provider); provider != "" {
		p.Provider = provider
	}
	p.touch()
	return true
}

// newPaymentCode returns 32 lowercase hex characters.
func newPaymentCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
