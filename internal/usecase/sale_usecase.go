package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CreateSaleInput carries the raw request values; SaleDate may be zero.
type CreateSaleInput struct {
	VehicleID string
	BuyerCpf  string
	SaleDate  time.Time
}

// ISaleUseCase sells a vehicle to a registered client.
//
// The sale is created with a pending payment; the vehicle only becomes sold
// when the payment is confirmed (see IPaymentWebhookUseCase).
type ISaleUseCase interface {
	CreateSale(ctx context.Context, in CreateSaleInput) (*entities.Sale, error)
	GetByID(ctx context.Context, id string) (*entities.Sale, error)
}

type SaleUseCase struct {
	vehicles interfaces.IVehicleRepository
	clients  interfaces.IClientRepository
	sales    interfaces.ISaleRepository
	uow      interfaces.IUnitOfWork
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(
	vehicles interfaces.IVehicleRepository,
	clients interfaces.IClientRepository,
	sales interfaces.ISaleRepository,
	uow interfaces.IUnitOfWork,
) *SaleUseCase {
	return &SaleUseCase{vehicles: vehicles, clients: clients, sales: sales, uow: uow}
}

func (u *SaleUseCase) CreateSale(ctx context.Context, in CreateSaleInput) (*entities.Sale, error) {
	vehicleID := strings.TrimSpace(in.VehicleID)
	log := logger.FromContext(ctx).With(zap.String("vehicle_id", vehicleID))

	cpf, err := entities.ParseCpf(in.BuyerCpf)
	if err != nil {
		log.Info("[sale][usecase] invalid buyer cpf")
		return nil, err
	}
	if vehicleID == "" {
		return nil, entities.ErrInvalidVehicleID
	}

	vehicle, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		log.Error("[sale][usecase] failed loading vehicle", zap.Error(err))
		return nil, err
	}
	if vehicle == nil {
		return nil, entities.ErrVehicleNotFound
	}
	if vehicle.IsSold() {
		log.Info("[sale][usecase] vehicle already sold")
		return nil, entities.ErrVehicleAlreadySold
	}

	client, err := u.clients.GetByCpf(ctx, cpf)
	if err != nil {
		log.Error("[sale][usecase] failed loading client", zap.Error(err))
		return nil, err
	}
	if client == nil {
		log.Info("[sale][usecase] buyer not registered")
		return nil, entities.ErrClientNotFound
	}

	sale, changes, err := entities.NewSale(vehicle, client, in.SaleDate)
	if err != nil {
		return nil, err
	}

	if err := u.uow.Commit(ctx, changes); err != nil {
		if errors.Is(err, entities.ErrDuplicateKey) {
			log.Info("[sale][usecase] vehicle already has an active sale")
			return nil, entities.ErrVehicleAlreadySold
		}
		log.Warn("[sale][usecase] commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("[sale][usecase] created",
		zap.String("sale_id", sale.ID),
		zap.String("payment_code", sale.Payment.Code),
		zap.String("total_price", sale.TotalPrice.StringFixed(2)),
	)
	return sale, nil
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (*entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entities.ErrInvalidSaleID
	}

	s, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, entities.ErrSaleNotFound
	}
	return s, nil
}
