package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/aba_ledger/internal/adapters/database"
	"github.com/SscSPs/aba_ledger/internal/core/services"
	"github.com/SscSPs/aba_ledger/internal/handlers"
	"github.com/SscSPs/aba_ledger/internal/middleware"
	"github.com/SscSPs/aba_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title ABA Ledger API
// @version 1.0
// @description Event-sourced double-entry ledger.

// @host localhost:8081
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()
	store, closeStore, err := database.OpenEventStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open event store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	container, ledgerService := services.NewServiceContainer(store)
	if err := ledgerService.Load(middleware.WithLogger(ctx, logger)); err != nil {
		logger.Error("Failed to replay journal", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.LoadSampleData {
		data, err := ledgerService.SeedSample(middleware.WithLogger(ctx, logger))
		if err != nil {
			logger.Error("Failed to load sample journal", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Sample journal loaded", slog.String("organization_id", data.OrganizationID.String()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", string(cfg.StoreDriver)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
