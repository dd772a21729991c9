package repository

import (
	"context"
	"fmt"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase/interfaces"
)

// SaleDynamoRepository loads Sale aggregates from DynamoDB and hydrates the
// vehicle, client and payment they reference.
type SaleDynamoRepository struct {
	ddb      DynamoAPI
	tables   Tables
	vehicles *VehicleDynamoRepository
	clients  *ClientDynamoRepository
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoAPI, tables Tables) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:      ddb,
		tables:   tables,
		vehicles: NewVehicleDynamoRepository(ddb, tables),
		clients:  NewClientDynamoRepository(ddb, tables),
	}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Sale, error) {
	var it saleItem
	found, err := getItem(ctx, r.ddb, r.tables.Sales, "id", id, &it)
	if err != nil || !found {
		return nil, err
	}
	s, err := fromSaleItem(it)
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByPaymentCode resolves the payment_code guard, whose owner is the sale.
func (r *SaleDynamoRepository) GetByPaymentCode(ctx context.Context, code string) (*entities.Sale, error) {
	saleID, err := lookupOwner(ctx, r.ddb, r.tables.Uniques, paymentCodeKey(code))
	if err != nil || saleID == "" {
		return nil, err
	}
	return r.GetByID(ctx, saleID)
}

func (r *SaleDynamoRepository) hydrate(ctx context.Context, s *entities.Sale) error {
	vehicle, err := r.vehicles.GetByID(ctx, s.VehicleID)
	if err != nil {
		return err
	}
	client, err := r.clients.GetByID(ctx, s.ClientID)
	if err != nil {
		return err
	}
	var pit paymentItem
	found, err := getItem(ctx, r.ddb, r.tables.Payments, "id", s.PaymentID, &pit)
	if err != nil {
		return err
	}
	if vehicle == nil || client == nil || !found {
		return fmt.Errorf("sale %s: dangling reference (vehicle=%t client=%t payment=%t)", s.ID, vehicle != nil, client != nil, found)
	}
	payment, err := fromPaymentItem(pit)
	if err != nil {
		return err
	}
	s.Vehicle = vehicle
	s.Client = client
	s.Payment = payment
	return nil
}
