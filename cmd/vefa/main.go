package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"vefa/internal/amqp"
	"vefa/internal/cache"
	"vefa/internal/cli"
	apphttp "vefa/internal/http"
	"vefa/internal/metrics"
	"vefa/internal/services"
	"vefa/internal/session"
)

var errShuttingDown = errors.New("shutting down")

func main() {
	cli.LoadEnvFile()

	boot := cli.SetupLogger(os.Stdout, "info", "text")
	cfg := cli.LoadAndValidateConfig(boot)
	logger := cli.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	snap, err := cli.LoadSnapshot(loadCtx, logger, cfg)
	cancelLoad()
	if err != nil {
		logger.Error("Failed to load seed data", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	// Activity events are optional; without a broker mutations are only logged.
	var publisher services.ActivityPublisher
	if cfg.AMQPEnabled() {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		publisher = client
		logger.Info("Activity events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("Activity events disabled - no AMQP_URL provided")
	}

	sessions := session.NewManager(snap, cfg.MaxSessions, cfg.SessionTTL, logger)
	cacheManager := cache.NewManager(logger)
	cacheManager.Register(sessions.Cleaner())
	cacheManager.StartCleanup(cfg.SessionCleanupInterval)

	tracker := services.NewTrackerService(sessions, publisher, logger)

	var ctx context.Context
	srv := apphttp.NewServer(":"+cfg.Port, tracker, apphttp.Options{
		Logger:             logger,
		MutationsPerMinute: cfg.MutationsPerMinute,
		CacheManager:       cacheManager,
		Ready: func(context.Context) error {
			if ctx != nil && ctx.Err() != nil {
				return errShuttingDown
			}
			return nil
		},
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, done := cli.GracefulShutdown(logger, cfg.ShutdownTimeout, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := tracker.Close(); err != nil {
			logger.Error("Failed to close activity publisher", "error", err)
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting vefa server", "port", cfg.Port, "backend", cfg.DataBackend)
		return srv.ListenAndServe()
	})
	g.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				metrics.ActiveSessions.Set(float64(tracker.SessionCount()))
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
