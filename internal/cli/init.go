// Package cli provides common initialization utilities shared by
// cmd/vefa, cmd/vefa-cli and cmd/vefa-activity.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vefa/internal/backend"
	"vefa/internal/config"
	applog "vefa/internal/log"
	"vefa/internal/seed"
)

// SetupLogger initializes structured logging from the configured level and
// format and sets it as the default logger. Unknown levels fall back to info.
func SetupLogger(w io.Writer, level, format string) *slog.Logger {
	lvl, err := applog.ParseLevel(level)
	logger := slog.New(applog.NewHandler(w, lvl, format))
	if err != nil {
		logger.Warn("Unknown log level, using info", "level", level)
	}
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// LoadSnapshot loads and validates the seed snapshot from the configured
// backend.
func LoadSnapshot(ctx context.Context, logger *slog.Logger, cfg *config.Config) (seed.Snapshot, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return seed.Snapshot{}, err
	}
	snap, err := backend.LoadSnapshot(ctx, backend.NewFactory(logger), bcfg)
	if err != nil {
		return seed.Snapshot{}, err
	}
	logger.Info("Seed snapshot loaded",
		"backend", bcfg.Type,
		"payments", len(snap.Payments),
		"documents", len(snap.Documents),
		"contacts", len(snap.Contacts),
		"steps", len(snap.Steps))
	return snap, nil
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when shutdown is complete.
func GracefulShutdown(logger *slog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		cancel()

		finished := make(chan struct{})
		go func() {
			if cleanup != nil {
				cleanup()
			}
			close(finished)
		}()

		select {
		case <-finished:
			logger.Info("Shutdown complete")
		case <-time.After(timeout):
			logger.Warn("Shutdown timeout reached")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and cleanup ran.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
