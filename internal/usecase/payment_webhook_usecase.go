package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// maxWebhookAttempts bounds the reload-and-reapply loop run when a concurrent
// delivery for the same sale wins the commit.
const maxWebhookAttempts = 3

var (
	ErrInvalidProviderPaymentID     = fmt.Errorf("%w: invalid provider payment id", entities.ErrValidation)
	ErrPaymentProviderNotConfigured = errors.New("payment provider not configured")
)

// IPaymentWebhookUseCase applies payment notifications to sales.
//
// Notifications are delivered at least once: replays are no-ops and an
// unknown payment code yields (nil, nil) so callers can answer the provider
// without revealing whether the code exists.
type IPaymentWebhookUseCase interface {
	ApplyPaymentWebhook(ctx context.Context, paymentCode, status, provider string) (*entities.Sale, error)
	ApplyProviderNotification(ctx context.Context, providerPaymentID string) (*entities.Sale, error)
}

type PaymentWebhookUseCase struct {
	sales    interfaces.ISaleRepository
	uow      interfaces.IUnitOfWork
	provider interfaces.IPaymentProvider
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(sales interfaces.ISaleRepository, uow interfaces.IUnitOfWork, provider interfaces.IPaymentProvider) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{sales: sales, uow: uow, provider: provider}
}

func (u *PaymentWebhookUseCase) ApplyPaymentWebhook(ctx context.Context, paymentCode, status, provider string) (*entities.Sale, error) {
	code := strings.TrimSpace(paymentCode)
	log := logger.FromContext(ctx).With(zap.String("payment_code", code))

	for attempt := 1; ; attempt++ {
		sale, err := u.apply(ctx, log, code, status, provider)
		if errors.Is(err, entities.ErrConcurrentUpdate) && attempt < maxWebhookAttempts {
			log.Warn("[webhook][usecase] concurrent update, reloading", zap.Int("attempt", attempt))
			continue
		}
		return sale, err
	}
}

func (u *PaymentWebhookUseCase) apply(ctx context.Context, log *zap.Logger, code, rawStatus, provider string) (*entities.Sale, error) {
	if code == "" {
		log.Info("[webhook][usecase] empty payment code ignored")
		return nil, nil
	}

	sale, err := u.sales.GetByPaymentCode(ctx, code)
	if err != nil {
		log.Error("[webhook][usecase] failed loading sale", zap.Error(err))
		return nil, err
	}
	if sale == nil {
		log.Info("[webhook][usecase] unknown payment code ignored")
		return nil, nil
	}

	status, err := entities.ParsePaymentStatus(rawStatus)
	if err != nil {
		log.Info("[webhook][usecase] invalid status", zap.String("status", rawStatus))
		return nil, err
	}

	previous := sale.Payment.Status
	if previous.IsTerminal() && previous != status {
		// Terminal states are not guarded: the latest provider signal wins.
		log.Warn("[webhook][usecase] overwriting terminal payment status",
			zap.String("from", string(previous)),
			zap.String("to", string(status)),
		)
	}

	if status == entities.PaymentStatusPaid && !sale.OwnsVehicle() {
		log.Warn("[webhook][usecase] paid on canceled sale, vehicle left unchanged",
			zap.String("sale_id", sale.ID),
			zap.String("vehicle_id", sale.VehicleID),
		)
	}

	changes, err := sale.ApplyPaymentStatus(status, provider)
	if err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		log.Info("[webhook][usecase] replay ignored", zap.String("status", string(status)))
		return sale, nil
	}

	if err := u.uow.Commit(ctx, changes); err != nil {
		log.Warn("[webhook][usecase] commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("[webhook][usecase] payment status applied",
		zap.String("sale_id", sale.ID),
		zap.String("status", string(status)),
		zap.String("vehicle_status", string(sale.Vehicle.Status)),
	)
	return sale, nil
}

// ApplyProviderNotification resolves a provider-native notification into a
// payment code and status and applies it. Provider statuses without a
// terminal meaning are acknowledged without changes.
func (u *PaymentWebhookUseCase) ApplyProviderNotification(ctx context.Context, providerPaymentID string) (*entities.Sale, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	log := logger.FromContext(ctx).With(zap.String("provider_payment_id", providerPaymentID))

	if providerPaymentID == "" {
		return nil, ErrInvalidProviderPaymentID
	}
	if u.provider == nil {
		log.Error("[webhook][usecase] payment provider not configured")
		return nil, ErrPaymentProviderNotConfigured
	}

	p, err := u.provider.FetchPayment(ctx, providerPaymentID)
	if err != nil {
		log.Error("[webhook][usecase] provider lookup failed", zap.Error(err))
		return nil, err
	}

	status, ok := mapProviderStatus(p.Status)
	if !ok {
		log.Info("[webhook][usecase] provider status ignored", zap.String("provider_status", p.Status))
		return nil, nil
	}
	return u.ApplyPaymentWebhook(ctx, p.ExternalReference, string(status), u.provider.Name())
}

func mapProviderStatus(providerStatus string) (entities.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusPaid, true
	case "cancelled", "canceled", "rejected", "refunded", "charged_back":
		return entities.PaymentStatusCanceled, true
	default:
		return "", false
	}
}
