package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spending-warehouse/internal/config"
	"spending-warehouse/internal/database"
	"spending-warehouse/internal/handlers"
	custommw "spending-warehouse/internal/middleware"
	"spending-warehouse/internal/repositories"
	"spending-warehouse/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	stagingRepo := repositories.NewStagingRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)
	monthlyRepo := repositories.NewMonthlySummaryRepository(db)
	trendRepo := repositories.NewCategoryTrendRepository(db)
	analyticsRepo := repositories.NewPersonAnalyticsRepository(db)
	paymentRepo := repositories.NewPaymentSummaryRepository(db)
	runRepo := repositories.NewEtlRunRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	snapshotService := services.NewSnapshotService(stagingRepo, snapshotRepo, metrics)
	monthlyService := services.NewMonthlySummaryService(snapshotRepo, monthlyRepo, metrics)
	trendService := services.NewCategoryTrendService(snapshotRepo, trendRepo, metrics)
	analyticsService := services.NewPersonAnalyticsService(snapshotRepo, analyticsRepo, nil, metrics)
	paymentService := services.NewPaymentSummaryService(snapshotRepo, paymentRepo, metrics)
	etlService := services.NewEtlService(
		snapshotService,
		monthlyService,
		trendService,
		analyticsService,
		paymentService,
		runRepo,
		cfg.Etl.BatchIDPrefix,
	)

	if cfg.Etl.SeedOnStartup {
		seeder := services.NewStagingSeeder(stagingRepo, cfg.Etl)
		created, err := seeder.SeedIfEmpty()
		if err != nil {
			log.Fatalf("Failed to seed staging store: %v", err)
		}
		if created > 0 {
			slog.Info("staging store seeded on startup", "fact_count", created)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	etlHandler := handlers.NewEtlHandler(etlService, snapshotService)
	aggregatesHandler := handlers.NewAggregatesHandler(
		monthlyService,
		trendService,
		analyticsService,
		paymentService,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","method":"${method}","uri":"${uri}",` +
			`"status":${status},"latency_ms":${latency},"trace_id":"${header:X-Trace-ID}"}` + "\n",
	}))
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitPerSecond*2))

	// Operational endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	etl := api.Group("/etl")
	etl.POST("/snapshot", etlHandler.RunSnapshot)
	etl.POST("/aggregations", etlHandler.RunAggregations)
	etl.POST("/pipeline", etlHandler.RunPipeline)
	etl.GET("/runs", etlHandler.GetRuns)

	api.GET("/snapshots/versions", etlHandler.GetSnapshotVersions)

	aggregates := api.Group("/aggregates")
	aggregates.GET("/monthly-summary", aggregatesHandler.GetMonthlySummary)
	aggregates.GET("/category-trends", aggregatesHandler.GetCategoryTrends)
	aggregates.GET("/person-analytics", aggregatesHandler.GetPersonAnalytics)
	aggregates.GET("/payment-summary", aggregatesHandler.GetPaymentSummary)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("starting warehouse API", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
