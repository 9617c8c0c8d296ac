package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/flight-delay-dashboard/internal/adapter/http"
	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/config"
	"github.com/couchcryptid/flight-delay-dashboard/internal/dataset"
	"github.com/couchcryptid/flight-delay-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The dataset is loaded once; every chart reads the same immutable table.
	table, err := dataset.NewLoader(logger, metrics).Load(ctx, dataset.PathsFromConfig(cfg))
	if err != nil {
		logger.Error("failed to load dataset", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	svc := charts.NewService(logger, metrics, cfg.ChartCacheSize)
	svc.Attach(table)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, cfg.DefaultHour, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
