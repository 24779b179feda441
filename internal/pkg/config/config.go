package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`
	// JWTTTLMinutes is the token lifetime; issued tokens expire after this
	// many minutes.
	JWTTTLMinutes int `env:"JWT_TTL_MINUTES, default=60"`
	// BcryptCost of 0 means the bcrypt default.
	BcryptCost int `env:"BCRYPT_COST, default=0"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=postgres://localhost:5432/herobox?sslmode=disable"`
	// ConnectTimeoutSeconds bounds the initial pool ping at startup.
	ConnectTimeoutSeconds int `env:"POSTGRES_CONNECT_TIMEOUT_SECONDS, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
