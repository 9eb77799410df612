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
	"vefa/internal/worker"
)

const (
	dedupWindowSize = 10000
	dedupWindowTTL  = time.Hour
	summaryInterval = time.Minute
)

func main() {
	cli.LoadEnvFile()

	boot := cli.SetupLogger(os.Stdout, "info", "text")
	cfg := cli.LoadAndValidateConfig(boot)
	logger := cli.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	logger.Info("Starting vefa-activity")

	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL is required to consume activity events")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}

	activity := worker.NewActivityWorker(logger, dedupWindowSize, dedupWindowTTL)

	cacheManager := cache.NewManager(logger)
	cacheManager.Register(activity.Cleaner())
	cacheManager.StartCleanup(cfg.SessionCleanupInterval)

	ctx, done := cli.GracefulShutdown(logger, cfg.ShutdownTimeout, func() {
		cacheManager.Stop()
		if err := client.Close(); err != nil {
			logger.Error("Failed to close AMQP client", "error", err)
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.ConsumeActivity(gctx, activity.HandleActivity)
	})
	g.Go(func() error {
		ticker := time.NewTicker(summaryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				activity.LogSummary(gctx)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Activity consumer stopped", "error", err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	activity.LogSummary(context.Background())
	logger.Info("vefa-activity stopped")
}
