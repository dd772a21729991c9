package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/adapter/http/middleware"
	"revenda_veiculos/internal/adapter/persistence/repository"
	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, limiter *middleware.WebhookLimiter) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := MemoryDependencies(repository.NewMemoryStore())
	gateway, err := payments.NewMercadoPagoGateway(config.MercadoPago{GatewayMock: "true"}, zap.NewNop())
	require.NoError(t, err)
	deps.PaymentProvider = gateway

	return testServer{t: t, router: NewRouter(zap.NewNop(), deps, limiter)}
}

func (s testServer) do(method, path, body string, out any) int {
	s.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRouter_SaleLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	var vehicle response.VehicleResponse
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/vehicles",
		`{"brand":"Toyota","model":"Corolla","year":2022,"color":"Prata","price":"50000.00"}`, &vehicle))

	var client response.ClientResponse
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/clients",
		`{"name":"Ana","email":"ana@example.com","cpf":"52998224725"}`, &client))
	assert.Equal(t, "529.982.247-25", client.Cpf)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/v1/clients",
		`{"name":"Outra","email":"outra@example.com","cpf":"529.982.247-25"}`, nil))

	var sale response.SaleResponse
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/sales",
		`{"vehicle_id":"`+vehicle.ID+`","buyer_cpf":"529.982.247-25"}`, &sale))
	assert.Equal(t, "50000.00", sale.TotalPrice)
	assert.Equal(t, "pending", sale.Payment.Status)
	assert.Len(t, sale.Payment.Code, 32)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/v1/sales",
		`{"vehicle_id":"`+vehicle.ID+`","buyer_cpf":"529.982.247-25"}`, nil))

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/v1/webhooks/payments/"+sale.Payment.Code,
		`{"status":"approved"}`, nil))
	assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/v1/webhooks/payments/unknown-code",
		`{"status":"paid"}`, nil))
	assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/v1/webhooks/payments/"+sale.Payment.Code,
		`{"status":"paid","provider":"MercadoPago"}`, nil))

	var got response.SaleResponse
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/sales/"+sale.ID, "", &got))
	assert.Equal(t, "paid", got.Payment.Status)
	assert.Equal(t, "sold", got.VehicleStatus)

	var sold []response.VehicleResponse
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/vehicles?status=sold", "", &sold))
	require.Len(t, sold, 1)
	assert.Equal(t, vehicle.ID, sold[0].ID)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPut, "/v1/vehicles/"+vehicle.ID,
		`{"brand":"Toyota","model":"Corolla","year":2022,"color":"Preto","price":"1"}`, nil))
}

func TestRouter_MercadoPagoMockNotification(t *testing.T) {
	s := newTestServer(t, nil)

	var vehicle response.VehicleResponse
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/vehicles",
		`{"brand":"Fiat","model":"Uno","year":2015,"color":"Branco","price":15000}`, &vehicle))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/clients",
		`{"name":"Ana","email":"ana@example.com","cpf":"529.982.247-25"}`, nil))

	var sale response.SaleResponse
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/sales",
		`{"vehicle_id":"`+vehicle.ID+`","buyer_cpf":"529.982.247-25"}`, &sale))

	assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/v1/webhooks/mercadopago",
		`{"type":"payment","data":{"id":"`+sale.Payment.Code+`"}}`, nil))

	var got response.SaleResponse
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/sales/"+sale.ID, "", &got))
	assert.Equal(t, "paid", got.Payment.Status)
	assert.Equal(t, "MercadoPago", got.Payment.Provider)
}

func TestRouter_WebhooksAreRateLimited(t *testing.T) {
	s := newTestServer(t, middleware.NewWebhookLimiter(config.Webhook{
		RateLimitRPS:     0.001,
		RateLimitBurst:   1,
		RateLimitIdleTTL: time.Minute,
	}))

	assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/v1/webhooks/payments/x", `{"status":"paid"}`, nil))
	assert.Equal(t, http.StatusTooManyRequests, s.do(http.MethodPost, "/v1/webhooks/payments/y", `{"status":"paid"}`, nil))
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/ping", "", nil))
}
