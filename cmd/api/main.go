package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"dmsanalytics/internal/config"
	"dmsanalytics/internal/database"
	"dmsanalytics/internal/database/schema"
	"dmsanalytics/internal/export"
	handlers "dmsanalytics/internal/http/handler"
	"dmsanalytics/internal/http/middleware"
	"dmsanalytics/internal/logging"
	"dmsanalytics/internal/otel"
	"dmsanalytics/internal/repository/sqlstore"
	"dmsanalytics/internal/service"
	"dmsanalytics/internal/storage"
)

// @title DMS Analytics API
// @version 1.0
// @description Read-only analytics over a document-management database.
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()

	logger := logging.New(os.Stdout, loc)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logging.Component(logger, "tracing"))
	if err != nil {
		fatal(logger, "tracing init failed", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		fatal(logger, "invalid database driver", err)
	}

	db, err := database.Open(cfg.Database, loc)
	if err != nil {
		fatal(logger, "failed to open database", err)
	}
	defer db.Close()

	// The dashboard still starts without a database; every table then loads empty.
	if err := database.Ping(ctx, db); err != nil {
		logger.Warn("database unreachable", slog.String("event", "db_unreachable"), slog.String("error", err.Error()))
	} else if _, err := schema.Verify(ctx, db, string(dialect), logger); err != nil {
		logger.Warn("schema check skipped", slog.String("error", err.Error()))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		fatal(logger, "failed to register service metrics", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(logger, "failed to register http metrics", err)
	}

	loader := service.NewLoader(sqlstore.New(db, dialect, loc), logging.Component(logger, "loader"), metrics)
	sessions := service.NewSessionStore(loader, metrics, cfg.Session.CacheSize, time.Duration(cfg.Session.TTLSec)*time.Second)

	var objStore storage.Storage
	if cfg.MinIO.StorageEnabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			logger.Error("object storage unavailable, report archiving disabled", slog.String("error", err.Error()))
			objStore = nil
		}
	}
	reports := service.NewReportService(
		objStore,
		export.PDFReport{Title: cfg.ReportTitle, Location: loc},
		time.Duration(cfg.MinIO.LinkExpirySec)*time.Second,
		metrics,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logging.Component(logger, "http")))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, db, reg, handlers.Deps{
		Sessions: sessions,
		Reports:  reports,
		Metrics:  metrics,
		Location: loc,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server starting", slog.String("event", "server_start"), slog.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		fatal(logger, "failed to start server", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
