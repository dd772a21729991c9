package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	HTTP        HTTP
	Logger      Logger
	Storage     Storage
	DynamoDB    DynamoDB
	MercadoPago MercadoPago
	Webhook     Webhook
}

type HTTP struct {
	Port    int    `env:"HTTP_PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
}

// DynamoDB settings are local-friendly: DynamoDB Local does not validate
// credentials, but the AWS SDK requires them.
type DynamoDB struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint         string `env:"DYNAMODB_ENDPOINT"`
	AutoCreateTables bool   `env:"DYNAMODB_AUTO_CREATE_TABLES" envDefault:"false"`

	VehiclesTable string `env:"VEHICLES_TABLE" envDefault:"vehicles"`
	ClientsTable  string `env:"CLIENTS_TABLE" envDefault:"clients"`
	PaymentsTable string `env:"PAYMENTS_TABLE" envDefault:"payments"`
	SalesTable    string `env:"SALES_TABLE" envDefault:"sales"`
	UniquesTable  string `env:"UNIQUES_TABLE" envDefault:"uniques"`
}

type MercadoPago struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	GatewayMock string `env:"PAYMENT_GATEWAY_MOCK"`
	LegacyMock  string `env:"MERCADOPAGO_MOCK"`
}

// MockEnabled reports whether provider calls must be skipped.
func (m MercadoPago) MockEnabled() bool {
	for _, v := range []string{m.GatewayMock, m.LegacyMock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

type Webhook struct {
	RateLimitRPS     float64       `env:"WEBHOOK_RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int           `env:"WEBHOOK_RATE_LIMIT_BURST" envDefault:"10"`
	RateLimitIdleTTL time.Duration `env:"WEBHOOK_RATE_LIMIT_IDLE_TTL" envDefault:"15m"`
}

// New loads envPath (when given and present) and parses the environment.
func New(envPath string) (Config, error) {
	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: want %q or %q", c.Storage.Driver, StorageDynamoDB, StorageMemory)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTP.Port)
	}
	if c.Webhook.RateLimitRPS <= 0 || c.Webhook.RateLimitBurst <= 0 || c.Webhook.RateLimitIdleTTL <= 0 {
		return errors.New("webhook rate limit must be positive")
	}
	return nil
}
