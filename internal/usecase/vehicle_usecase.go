package usecase

import (
	"context"
	"sort"
	"strings"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IVehicleUseCase manages the dealership stock.
type IVehicleUseCase interface {
	Create(ctx context.Context, data entities.VehicleData) (*entities.Vehicle, error)
	Update(ctx context.Context, id string, data entities.VehicleData) (*entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
	ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]*entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
	uow  interfaces.IUnitOfWork
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, uow interfaces.IUnitOfWork) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, uow: uow}
}

func (u *VehicleUseCase) Create(ctx context.Context, data entities.VehicleData) (*entities.Vehicle, error) {
	log := logger.FromContext(ctx)

	v, err := entities.NewVehicle(data)
	if err != nil {
		log.Info("[vehicle][usecase] rejected", zap.Error(err))
		return nil, err
	}

	var changes entities.ChangeSet
	changes.Insert(v)
	if err := u.uow.Commit(ctx, changes); err != nil {
		log.Error("[vehicle][usecase] commit failed", zap.String("vehicle_id", v.ID), zap.Error(err))
		return nil, err
	}

	log.Info("[vehicle][usecase] created", zap.String("vehicle_id", v.ID), zap.String("price", v.Price.StringFixed(2)))
	return v, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, data entities.VehicleData) (*entities.Vehicle, error) {
	log := logger.FromContext(ctx).With(zap.String("vehicle_id", id))

	v, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := v.Update(data); err != nil {
		log.Info("[vehicle][usecase] update rejected", zap.Error(err))
		return nil, err
	}

	var changes entities.ChangeSet
	changes.Update(v)
	if err := u.uow.Commit(ctx, changes); err != nil {
		log.Error("[vehicle][usecase] commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("[vehicle][usecase] updated", zap.Int("version", v.Version))
	return v, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entities.ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, entities.ErrVehicleNotFound
	}
	return v, nil
}

// ListByStatus returns the vehicles in the given status, cheapest first.
func (u *VehicleUseCase) ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]*entities.Vehicle, error) {
	vehicles, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(vehicles, func(i, j int) bool {
		return vehicles[i].Price.LessThan(vehicles[j].Price)
	})
	return vehicles, nil
}
