package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

const providerName = "MercadoPago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidMercadoPagoPaymentID = errors.New("mercado pago payment id must be numeric")

// MercadoPagoGateway looks up payments notified by Mercado Pago. In mock mode
// every payment is reported approved and the id doubles as the external
// reference, so a notification for id <code> settles the sale with that code.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentProvider = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPago, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MockEnabled() {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if cfg.AccessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(sdkCfg), log), nil
}

func newMercadoPagoGateway(client payment.Client, log *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, log: log}
}

func (g *MercadoPagoGateway) Name() string {
	return providerName
}

func (g *MercadoPagoGateway) FetchPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)

	if g != nil && g.mockMode {
		g.log.Info("[payment][gateway] mock fetch", zap.String("provider_payment_id", providerPaymentID))
		return interfaces.ProviderPayment{
			ID:                providerPaymentID,
			Status:            "approved",
			ExternalReference: providerPaymentID,
		}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.ProviderPayment{}, ErrInvalidMercadoPagoPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.log.Error("[payment][gateway] sdk get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}
	g.log.Info("[payment][gateway] fetched payment",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)

	return interfaces.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
