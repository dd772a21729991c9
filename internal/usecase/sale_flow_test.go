package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"revenda_veiculos/internal/adapter/persistence/repository"
	"revenda_veiculos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dealership struct {
	store    *repository.MemoryStore
	vehicles *VehicleUseCase
	clients  *ClientUseCase
	sales    *SaleUseCase
	webhooks *PaymentWebhookUseCase
}

func newDealership() dealership {
	store := repository.NewMemoryStore()
	return dealership{
		store:    store,
		vehicles: NewVehicleUseCase(store.Vehicles(), store),
		clients:  NewClientUseCase(store.Clients(), store),
		sales:    NewSaleUseCase(store.Vehicles(), store.Clients(), store.Sales(), store),
		webhooks: NewPaymentWebhookUseCase(store.Sales(), store, nil),
	}
}

func (d dealership) seed(t *testing.T) (*entities.Vehicle, *entities.Client) {
	t.Helper()
	ctx := context.Background()
	v, err := d.vehicles.Create(ctx, entities.VehicleData{
		Brand: "Toyota", Model: "Corolla", Year: 2022, Color: "Prata",
		Price: decimal.RequireFromString("50000.00"),
	})
	require.NoError(t, err)
	c, err := d.clients.Create(ctx, "Ana", "ana@example.com", validCpf)
	require.NoError(t, err)
	return v, c
}

func TestSaleFlow_PaidSellsVehicle(t *testing.T) {
	d := newDealership()
	ctx := context.Background()
	v, c := d.seed(t)

	sale, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)
	assert.Equal(t, c.ID, sale.ClientID)
	assert.Equal(t, "50000.00", sale.TotalPrice.StringFixed(2))
	assert.Equal(t, entities.PaymentStatusPending, sale.Payment.Status)

	applied, err := d.webhooks.ApplyPaymentWebhook(ctx, sale.Payment.Code, "paid", "MercadoPago")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPaid, applied.Payment.Status)
	assert.Equal(t, "MercadoPago", applied.Payment.Provider)

	stored, err := d.vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VehicleStatusSold, stored.Status)

	_, err = d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	assert.ErrorIs(t, err, entities.ErrVehicleAlreadySold)

	t.Run("replay changes nothing", func(t *testing.T) {
		before, err := d.sales.GetByID(ctx, sale.ID)
		require.NoError(t, err)

		again, err := d.webhooks.ApplyPaymentWebhook(ctx, sale.Payment.Code, "PAID", "other")
		require.NoError(t, err)
		assert.Equal(t, before.Version, again.Version)

		after, err := d.sales.GetByID(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Version, after.Version)
		assert.Equal(t, before.Payment.Version, after.Payment.Version)
		assert.Equal(t, "MercadoPago", after.Payment.Provider)
	})
}

func TestSaleFlow_CanceledReleasesVehicle(t *testing.T) {
	d := newDealership()
	ctx := context.Background()
	v, _ := d.seed(t)

	sale, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)

	_, err = d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	assert.ErrorIs(t, err, entities.ErrVehicleAlreadySold)

	_, err = d.webhooks.ApplyPaymentWebhook(ctx, sale.Payment.Code, "canceled", "MercadoPago")
	require.NoError(t, err)

	stored, err := d.vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VehicleStatusAvailable, stored.Status)

	next, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)
	assert.NotEqual(t, sale.Payment.Code, next.Payment.Code)
}

func TestSaleFlow_StaleNotificationsForReplacedSale(t *testing.T) {
	d := newDealership()
	ctx := context.Background()
	v, _ := d.seed(t)

	first, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)
	_, err = d.webhooks.ApplyPaymentWebhook(ctx, first.Payment.Code, "canceled", "MercadoPago")
	require.NoError(t, err)

	second, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)
	_, err = d.webhooks.ApplyPaymentWebhook(ctx, second.Payment.Code, "paid", "MercadoPago")
	require.NoError(t, err)

	sold, err := d.vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, entities.VehicleStatusSold, sold.Status)

	t.Run("cancel replay keeps vehicle sold", func(t *testing.T) {
		_, err := d.webhooks.ApplyPaymentWebhook(ctx, first.Payment.Code, "canceled", "MercadoPago")
		require.NoError(t, err)

		stored, err := d.vehicles.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.VehicleStatusSold, stored.Status)
		assert.Equal(t, sold.Version, stored.Version)
	})

	t.Run("paid on canceled sale keeps vehicle untouched", func(t *testing.T) {
		applied, err := d.webhooks.ApplyPaymentWebhook(ctx, first.Payment.Code, "paid", "MercadoPago")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, applied.Payment.Status)
		assert.True(t, applied.Canceled)

		stored, err := d.vehicles.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, sold.Version, stored.Version)

		current, err := d.sales.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, current.Payment.Status)
		assert.False(t, current.Canceled)
	})
}

func TestSaleFlow_IgnoredNotifications(t *testing.T) {
	d := newDealership()
	ctx := context.Background()
	v, _ := d.seed(t)

	sale, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
	require.NoError(t, err)

	got, err := d.webhooks.ApplyPaymentWebhook(ctx, "does-not-exist", "paid", "MercadoPago")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = d.webhooks.ApplyPaymentWebhook(ctx, sale.Payment.Code, "refunded", "MercadoPago")
	assert.ErrorIs(t, err, entities.ErrInvalidPaymentStatus)

	stored, err := d.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPending, stored.Payment.Status)
	assert.Equal(t, entities.VehicleStatusAvailable, stored.Vehicle.Status)
	assert.Equal(t, 1, stored.Version)
}

func TestSaleFlow_ConcurrentSalesOfOneVehicle(t *testing.T) {
	d := newDealership()
	ctx := context.Background()
	v, _ := d.seed(t)

	const buyers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []*entities.Sale
		conflicts int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := d.sales.CreateSale(ctx, CreateSaleInput{VehicleID: v.ID, BuyerCpf: validCpf})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded = append(succeeded, s)
			case errors.Is(err, entities.ErrVehicleAlreadySold), errors.Is(err, entities.ErrConcurrentUpdate):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Len(t, succeeded, 1)
	assert.Equal(t, buyers-1, conflicts)

	code := succeeded[0].Payment.Code
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.webhooks.ApplyPaymentWebhook(ctx, code, "paid", "MercadoPago"); err != nil {
				t.Errorf("webhook: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := d.vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VehicleStatusSold, stored.Status)
	// created at 1, sold exactly once
	assert.Equal(t, 2, stored.Version)
}
