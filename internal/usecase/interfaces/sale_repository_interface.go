package interfaces

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
)

// ISaleRepository loads Sale aggregates with Vehicle, Client and Payment
// hydrated. A miss returns (nil, nil).
type ISaleRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Sale, error)
	GetByPaymentCode(ctx context.Context, code string) (*entities.Sale, error)
}
