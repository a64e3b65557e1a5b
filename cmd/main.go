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

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/scheduler"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/go-chi/chi/v5"
)

// @title        Swiss Tournament API
// @version      1.0
// @description  Players, match results, standings and Swiss pairings.
// @BasePath     /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("driver", cfg.DatabaseDriver),
		slog.Bool("archive", cfg.ArchiveEnabled()),
	)

	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(migrateCtx, dbConn, cfg.DatabaseDriver)
	cancelMigrate()
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("schema is up to date")

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	wsHub := brackets.NewHub(logger)
	go wsHub.Run(appCtx)
	logger.Info("WebSocket hub started")

	playerRepo := repositories.NewPlayerRepository(dbConn)
	matchRepo := repositories.NewMatchRepository(dbConn)
	standingRepo := repositories.NewStandingRepository(dbConn)

	tournamentService := services.NewTournamentService(
		dbConn,
		playerRepo,
		matchRepo,
		standingRepo,
		brackets.NewSwissGenerator(),
		wsHub,
		logger,
	)

	var archiver *scheduler.SnapshotArchiver
	var snapshotScheduler *scheduler.Scheduler
	if cfg.ArchiveEnabled() {
		uploader, err := storage.NewCloudflareR2Uploader(appCtx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
			Endpoint:        cfg.R2Endpoint,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		archiver = scheduler.NewSnapshotArchiver(tournamentService, uploader, logger)
		logger.Info("Cloudflare R2 uploader initialized")

		if cfg.SnapshotSchedule != "" {
			snapshotScheduler = scheduler.NewScheduler(archiver, cfg.SnapshotSchedule, logger)
			if err := snapshotScheduler.Start(); err != nil {
				return err
			}
			go snapshotScheduler.RunNow()
		}
	}

	tournamentHandler := handlers.NewTournamentHandler(tournamentService, logger)
	// Keep the interface nil when the archive is disabled.
	snapshotHandler := handlers.NewSnapshotHandler(nil, logger)
	if archiver != nil {
		snapshotHandler = handlers.NewSnapshotHandler(archiver, logger)
	}
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger)

	router := chi.NewRouter()
	routes.SetupRoutes(router, tournamentHandler, snapshotHandler, webSocketHandler, cfg.CORSAllowedOrigins)
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
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if snapshotScheduler != nil {
			snapshotScheduler.Stop(shutdownCtx)
		}

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}
	return nil
}
