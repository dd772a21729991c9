package routes

import (
	"context"
	"fmt"

	"revenda_veiculos/internal/adapter/persistence/repository"
	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/database"
	"revenda_veiculos/internal/infrastructure/payments"
	"revenda_veiculos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Dependencies are the gateways the use cases run against.
type Dependencies struct {
	Vehicles        interfaces.IVehicleRepository
	Clients         interfaces.IClientRepository
	Sales           interfaces.ISaleRepository
	UnitOfWork      interfaces.IUnitOfWork
	PaymentProvider interfaces.IPaymentProvider
}

// MemoryDependencies backs every gateway with one in-process store.
func MemoryDependencies(store *repository.MemoryStore) Dependencies {
	return Dependencies{
		Vehicles:   store.Vehicles(),
		Clients:    store.Clients(),
		Sales:      store.Sales(),
		UnitOfWork: store,
	}
}

func BuildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger) (Dependencies, error) {
	var deps Dependencies

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("[app][storage] using in-memory storage, data is lost on restart")
		deps = MemoryDependencies(repository.NewMemoryStore())
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return deps, fmt.Errorf("connect dynamodb: %w", err)
		}
		tables := repository.TablesFromConfig(cfg.DynamoDB)
		if cfg.DynamoDB.AutoCreateTables {
			if err := database.EnsureTables(ctx, ddb, tables.Schemas(), log); err != nil {
				return deps, fmt.Errorf("ensure tables: %w", err)
			}
		}
		deps = Dependencies{
			Vehicles:   repository.NewVehicleDynamoRepository(ddb, tables),
			Clients:    repository.NewClientDynamoRepository(ddb, tables),
			Sales:      repository.NewSaleDynamoRepository(ddb, tables),
			UnitOfWork: repository.NewDynamoUnitOfWork(ddb, tables),
		}
	default:
		return deps, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log)
	if err != nil {
		log.Warn("[app][payment] Mercado Pago gateway not configured, provider notifications disabled", zap.Error(err))
	} else {
		deps.PaymentProvider = gateway
	}

	return deps, nil
}
