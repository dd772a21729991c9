package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "revenda_veiculos/docs"
	"revenda_veiculos/internal/adapter/http/routes"
	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Vehicle Sales API
// @version         1.0
// @description     Vehicle dealership sales: catalog, clients, sales and payment webhooks.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.New("")
	if err != nil {
		zap.NewExample().Fatal("[app] invalid configuration", zap.Error(err))
	}

	log := logger.New(cfg.Logger)
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("[app] server stopped", zap.Error(err))
		os.Exit(1)
	}
	log.Info("[app] server exited")
}
