package interfaces

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
)

// IVehicleRepository reads Vehicle entities. Writes go through IUnitOfWork.
//
// GetByID returns (nil, nil) when the vehicle does not exist.
type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
	ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]*entities.Vehicle, error)
}
