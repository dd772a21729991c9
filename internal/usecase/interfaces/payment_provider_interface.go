package interfaces

import "context"

// ProviderPayment is the subset of a provider payment needed to reconcile a
// notification with a Sale.
type ProviderPayment struct {
	ID                string
	Status            string
	ExternalReference string
}

// IPaymentProvider abstracts external payment providers (e.g. Mercado Pago).
//
// It resolves the payment referenced by a provider notification so its status
// can be applied to the Sale whose payment code is the external reference.
type IPaymentProvider interface {
	Name() string
	FetchPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}
