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

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/hastma/hastma-cup/config"
	"github.com/hastma/hastma-cup/db"
	"github.com/hastma/hastma-cup/handlers"
	"github.com/hastma/hastma-cup/repositories"
	api "github.com/hastma/hastma-cup/routes"
	"github.com/hastma/hastma-cup/services"
	"github.com/hastma/hastma-cup/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureSchema(schemaCtx, dbConn); err != nil {
		cancelSchema()
		logger.Error("failed to ensure database schema", slog.Any("error", err))
		os.Exit(1)
	}
	cancelSchema()
	logger.Info("database schema ensured")

	// Snapshot export is optional: without R2 credentials the endpoint
	// responds 501 instead of failing startup.
	var uploader storage.FileUploader
	if cfg.SnapshotsEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("snapshot export disabled, R2 credentials not configured")
	}

	documentRepo := repositories.NewPostgresDocumentRepository(dbConn)
	predictionRepo := repositories.NewPostgresPredictionRepository(dbConn)
	documentCache := storage.NewDocumentCache(cfg.CacheFile)
	logger.Info("repositories initialized")

	tournamentService := services.NewTournamentService(documentRepo, documentCache, logger)
	authService := services.NewAuthService(cfg.AdminPasswordHash, []byte(cfg.JWTSecretKey), cfg.SessionTimeout)
	predictionService := services.NewPredictionService(predictionRepo)
	snapshotService := services.NewSnapshotService(tournamentService, uploader)
	dashboardService := services.NewDashboardService(tournamentService, predictionService)
	logger.Info("services initialized")

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	if err := tournamentService.Load(loadCtx); err != nil {
		cancelLoad()
		logger.Error("failed to load tournament document", slog.Any("error", err))
		os.Exit(1)
	}
	cancelLoad()
	logger.Info("tournament document loaded")

	authHandler := handlers.NewAuthHandler(authService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, snapshotService)
	teamHandler := handlers.NewTeamHandler(tournamentService)
	matchHandler := handlers.NewMatchHandler(tournamentService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authService,
		authHandler,
		tournamentHandler,
		teamHandler,
		matchHandler,
		predictionHandler,
		dashboardHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		}

		// Let in-flight remote saves settle before the process exits.
		tournamentService.WaitForSaves()
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
