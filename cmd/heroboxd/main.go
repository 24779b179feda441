// Command heroboxd runs the HeroBox game backend API. It applies pending
// database migrations, connects the PostgreSQL pool, and serves the HTTP API
// until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heroboxai/herobox-api/internal/api"
	"github.com/heroboxai/herobox-api/internal/infrastructure/db/postgres"
	"github.com/heroboxai/herobox-api/internal/pkg/config"
	"github.com/heroboxai/herobox-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("database schema up to date")

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, time.Duration(cfg.Postgres.ConnectTimeoutSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	e := api.NewRouter(pool, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
