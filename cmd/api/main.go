package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marzkaterina/Logio-app/internal/application/reporting"
	"github.com/marzkaterina/Logio-app/internal/infrastructure/csvstore"
	httpRouter "github.com/marzkaterina/Logio-app/internal/interfaces/http"
	"github.com/marzkaterina/Logio-app/pkg/config"
	"github.com/marzkaterina/Logio-app/pkg/logger"
	"github.com/marzkaterina/Logio-app/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Data.Dir).
		Msg("starting application")

	// One-time derivation: load the static tables and build the immutable
	// snapshot every request reads from. Any data-shape error aborts here;
	// serving partially correct costs is worse than not starting.
	datasets := csvstore.NewDatasetRepository(cfg.Data.Dir)
	col := metrics.NewCollector("logio")

	deriveStart := time.Now()
	snap, err := reporting.Derive(datasets)
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot derivation")
	}
	col.DeriveDuration.Observe(time.Since(deriveStart).Seconds())
	col.SnapshotProducts.Set(float64(len(snap.Products)))
	col.SnapshotEvents.Set(float64(len(snap.Events)))
	col.SnapshotMovements.Set(float64(len(snap.Movements)))

	log.Info().
		Str("snapshot_id", snap.ID.String()).
		Int("products", len(snap.Products)).
		Int("events", len(snap.Events)).
		Int("movements", len(snap.Movements)).
		Dur("took", time.Since(deriveStart)).
		Msg("snapshot derived")

	reportUC := reporting.NewReportUseCase(snap)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"snapshot_id": snap.ID.String(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportUC: reportUC,
		Metrics:  col,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
