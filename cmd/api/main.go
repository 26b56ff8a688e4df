package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"overlaycast/internal/config"
	"overlaycast/internal/database"
	"overlaycast/internal/database/migration"
	handlers "overlaycast/internal/http/handler"
	"overlaycast/internal/http/middleware"
	"overlaycast/internal/logger"
	"overlaycast/internal/otel"
	"overlaycast/internal/repository"
	"overlaycast/internal/repository/memory"
	"overlaycast/internal/repository/postgres"
	"overlaycast/internal/segment"
	"overlaycast/internal/service"
	"overlaycast/internal/storage"
	"overlaycast/web"
)

// @title Overlay API
// @version 1.0
// @description Overlay CRUD and HLS segment delivery for the livestream viewer.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format, logger.Location(cfg.Log.Timezone))

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	db, repo, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	src, err := openSegments(cfg, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())

	deps := handlers.Dependencies{
		Overlays: service.NewOverlayService(repo),
		Segments: src,
		Landing:  web.Index,
		Log:      log,
	}
	// Leave DB as a nil interface for the memory store.
	if db != nil {
		deps.DB = db
	}
	handlers.RegisterRoutes(app, deps)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterDocs(app)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", addr), slog.String("store", cfg.StoreDriver), slog.String("segments", cfg.HLS.Backend))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore selects the overlay repository. The postgres store is probed and migrated
// at startup, but an unreachable server only produces a warning.
func openStore(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*sql.DB, repository.OverlayRepository, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Info("using in-memory overlay store")
		return nil, memory.NewOverlayMemory(), nil
	case "postgres", "":
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := database.Probe(ctx, db, log); err == nil {
			if err := migration.EnsureMigrated(ctx, db, log); err != nil {
				log.Warn("migration failed", slog.String("error", err.Error()))
			}
		}
		return db, postgres.NewOverlayPostgres(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openSegments(cfg *config.AppConfig, log *slog.Logger) (segment.Source, error) {
	switch cfg.HLS.Backend {
	case "fs", "":
		log.Info("serving segments from disk", slog.String("dir", cfg.HLS.Dir))
		return segment.NewDirSource(cfg.HLS.Dir), nil
	case "s3":
		store, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("init object storage: %w", err)
		}
		log.Info("serving segments from object storage", slog.String("bucket", cfg.MinIO.Bucket), slog.String("prefix", cfg.MinIO.Prefix))
		return segment.NewObjectSource(store, cfg.MinIO.Prefix), nil
	default:
		return nil, errors.New("SEGMENT_BACKEND must be fs or s3")
	}
}
