package request

import (
	"encoding/json"
	"strings"
)

// PaymentWebhookRequest is the provider-agnostic notification body.
type PaymentWebhookRequest struct {
	Status   string `json:"status" example:"paid"`
	Provider string `json:"provider,omitempty" example:"MercadoPago"`
}

// MercadoPagoNotificationRequest is the webhook body posted by Mercado Pago.
// data.id arrives as a string or a number depending on the notification
// version.
type MercadoPagoNotificationRequest struct {
	Type   string `json:"type" example:"payment"`
	Action string `json:"action,omitempty" example:"payment.updated"`
	Data   struct {
		ID json.RawMessage `json:"id" swaggertype:"string" example:"1234567890"`
	} `json:"data"`
}

func (r MercadoPagoNotificationRequest) IsPayment() bool {
	return strings.EqualFold(strings.TrimSpace(r.Type), "payment")
}

func (r MercadoPagoNotificationRequest) ResolvePaymentID() string {
	raw := strings.TrimSpace(string(r.Data.ID))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal([]byte(raw), &n); err == nil {
		return n.String()
	}
	return ""
}
