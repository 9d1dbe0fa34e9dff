package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"

	"github.com/cedab23/blueprints/internal/api"
	"github.com/cedab23/blueprints/internal/api/handler"
	"github.com/cedab23/blueprints/internal/blueprint"
	"github.com/cedab23/blueprints/internal/blueprint/metrics"
	"github.com/cedab23/blueprints/internal/config"
	"github.com/cedab23/blueprints/internal/database"
)

var serveCmd = cli.Command{
	Name:   "serve",
	Usage:  "run the HTTP server (default)",
	Action: serve,
}

func serve(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	var (
		store  blueprint.Store
		pinger handler.DBPinger
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()
		slog.Info("connected to database", "maxConns", cfg.DBMaxConns)

		if cfg.MigrateOnStart {
			n, err := database.Migrate(db.Pool())
			if err != nil {
				return err
			}
			slog.Info("database migrations applied", "count", n)
		}

		store = blueprint.NewPostgresStore(db.Pool())
		pinger = db
	case config.BackendMemory:
		slog.Warn("using in-memory store; blueprints are lost on restart")
		store = blueprint.NewMemoryStore()
	}

	svc := blueprint.NewService(store,
		blueprint.WithLogger(slog.Default()),
		blueprint.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)

	router := api.NewRouter(api.RouterDeps{
		Blueprints:   svc,
		DBPinger:     pinger,
		StoreBackend: cfg.StoreBackend,
		Version:      cfg.Version,
		APIKeyHash:   cfg.APIKeyHash,
		OpenAPISpec:  api.OpenAPISpec,
		Registerer:   prometheus.DefaultRegisterer,
		Gatherer:     prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting blueprints server",
			"port", cfg.Port,
			"version", cfg.Version,
			"store", cfg.StoreBackend,
			"writeProtected", cfg.APIKeyHash != "",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
