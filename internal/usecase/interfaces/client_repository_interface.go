package interfaces

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
)

// IClientRepository reads Client entities; both lookups return (nil, nil) on a miss.
type IClientRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	GetByCpf(ctx context.Context, cpf entities.Cpf) (*entities.Client, error)
}
