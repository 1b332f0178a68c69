package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Economy  EconomyConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"economy"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type WorkerConfig struct {
	AuctionCloseInterval time.Duration `env:"WORKER_AUCTION_CLOSE_INTERVAL" envDefault:"30s"`
	AuctionCloseBatch    int           `env:"WORKER_AUCTION_CLOSE_BATCH" envDefault:"20"`
}

type EconomyConfig struct {
	// AllowDebt keeps the historical behavior where penalties can push a
	// balance below zero (a fine is a debt). With it off, a penalty batch
	// that would overdraw any account is rejected whole.
	AllowDebt bool `env:"ECONOMY_ALLOW_DEBT" envDefault:"true"`

	// EnforceFairness rejects trade proposals whose offer totals diverge
	// beyond FairnessThreshold instead of merely flagging them.
	EnforceFairness   bool    `env:"ECONOMY_ENFORCE_FAIRNESS" envDefault:"true"`
	FairnessThreshold float64 `env:"ECONOMY_FAIRNESS_THRESHOLD" envDefault:"0.80"`

	// TransferFee is the flat charge the sender pays on top of a
	// peer-to-peer transfer, unless a tax exemption is spent.
	TransferFee int64 `env:"ECONOMY_TRANSFER_FEE" envDefault:"800"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
