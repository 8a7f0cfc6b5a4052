package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docuagent/internal/agent"
	"docuagent/internal/config"
	"docuagent/internal/database"
	"docuagent/internal/database/migration"
	"docuagent/internal/extract"
	handlers "docuagent/internal/http/handler"
	"docuagent/internal/http/middleware"
	"docuagent/internal/notify"
	"docuagent/internal/otel"
	"docuagent/internal/repository/postgres"
	"docuagent/internal/service"
	"docuagent/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing first so every later component picks up the global provider.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	agents, err := agent.New(cfg.Agent, cfg.Settings.RiskThreshold)
	if err != nil {
		log.Fatalf("failed to initialize agents: %v", err)
	}

	docRepo := postgres.NewDocumentPostgres(db)
	notifier := notify.NewWebhook(cfg.Notify)

	svc := service.New(objStore, docRepo, extract.New(), agents, notifier, cfg.Settings, service.Options{
		AgentTimeout:  time.Duration(cfg.Agent.TimeoutSec) * time.Second,
		NotifyTimeout: time.Duration(cfg.Notify.TimeoutSec) * time.Second,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    50 * 1024 * 1024,
	})

	// Global middleware: request IDs, structured request logs, tracing and
	// request counters.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, svc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
