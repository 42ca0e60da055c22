package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "volunteer-portal-backend/internal/api/http"
	"volunteer-portal-backend/internal/config"
	"volunteer-portal-backend/internal/directory"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/metrics"
	"volunteer-portal-backend/internal/repository/postgres"
	"volunteer-portal-backend/internal/security"
	"volunteer-portal-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Volunteer Portal Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Directory configuration", "base_url", cfg.Directory.BaseURL, "timeout", cfg.DirectoryTimeout())

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)
	people := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.APIKey, cfg.DirectoryTimeout())

	// Initialize Metrics
	observer, err := metrics.NewPrometheusObserver("", nil)
	if err != nil {
		logger.Error("Failed to register metrics", "error", err)
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize Services
	table := service.NewTeamTable(store.TeamRequirementsRepository, cfg.Cache.Size, cfg.TeamRequirementsTTL())
	onboardingSvc := service.NewOnboardingService(table, people, observer, time.Now)
	teamSvc := service.NewTeamRequirementsService(store.TeamRequirementsRepository, table)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	router := httpapi.NewRouter(tokenManager, httpapi.Services{
		Onboarding:       onboardingSvc,
		TeamRequirements: teamSvc,
	})

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
