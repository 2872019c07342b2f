// Package main provides the entry point for the Currency Rates API server
// @title Currency Rates API
// @version 1.0
// @description Currencies and exchange rates between them.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"currencyrates/internal/api/middleware"
	"currencyrates/internal/api/routes"
	"currencyrates/internal/api/server"
	"currencyrates/internal/config"
	"currencyrates/internal/database"
	"currencyrates/internal/logging"
	"currencyrates/internal/validation"

	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// A missing default .env is fine; an explicitly requested one is not
	envErr := godotenv.Load(*envFile)

	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if envErr != nil {
		if *envFile != ".env" {
			logger.Error("Failed to load env file", slog.String("path", *envFile), slog.Any("error", envErr))
			os.Exit(1)
		}
		logger.Warn("No .env file loaded", slog.Any("error", envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Setup(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	validation.Initialize()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	if err := limiter.Start(middleware.DefaultCleanupSchedule); err != nil {
		logger.Error("Failed to start rate limiter", slog.Any("error", err))
		os.Exit(1)
	}
	defer limiter.Stop()

	router := routes.SetupRoutes(cfg, db, logger, limiter)

	if err := server.New(cfg.API, router, logger).Run(ctx); err != nil {
		logger.Error("Server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
