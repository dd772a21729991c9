package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "revenda_veiculos/docs"
	"revenda_veiculos/internal/adapter/http/handlers"
	"revenda_veiculos/internal/adapter/http/middleware"
	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Run builds the dependencies and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	deps, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           NewRouter(log, deps, middleware.NewWebhookLimiter(cfg.Webhook)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][server] listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires handlers over deps. It does no I/O, so tests can build it
// over an in-memory store.
func NewRouter(log *zap.Logger, deps Dependencies, limiter *middleware.WebhookLimiter) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(log), logger.Recovery(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	vehicleHandler := handlers.NewVehicleHandler(usecase.NewVehicleUseCase(deps.Vehicles, deps.UnitOfWork))
	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(deps.Clients, deps.UnitOfWork))
	saleHandler := handlers.NewSaleHandler(usecase.NewSaleUseCase(deps.Vehicles, deps.Clients, deps.Sales, deps.UnitOfWork))
	webhookHandler := handlers.NewWebhookHandler(usecase.NewPaymentWebhookUseCase(deps.Sales, deps.UnitOfWork, deps.PaymentProvider))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addVehicleRoutes(v1, vehicleHandler)
	addClientRoutes(v1, clientHandler)
	addSaleRoutes(v1, saleHandler)
	addWebhookRoutes(v1, webhookHandler, limiter)

	return router
}
