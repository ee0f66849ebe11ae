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

	"github.com/ssfi-digital/federation-portal/config"
	"github.com/ssfi-digital/federation-portal/db"
	"github.com/ssfi-digital/federation-portal/handlers"
	"github.com/ssfi-digital/federation-portal/live"
	"github.com/ssfi-digital/federation-portal/repositories"
	api "github.com/ssfi-digital/federation-portal/routes"
	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/storage"
	"github.com/ssfi-digital/federation-portal/store"
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
		}
	}()
	logger.Info("database connection established")

	if err := repositories.EnsureSchema(context.Background(), dbConn); err != nil {
		logger.Error("failed to ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Media uploads are optional; without R2 credentials the CMS still works,
	// it just cannot accept image uploads.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
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
		logger.Warn("R2 credentials not configured, CMS media uploads disabled")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()
	logger.Info("live update hub started")

	snapshotRepo := repositories.NewPostgresSnapshotRepository(dbConn)
	appStore := store.New(snapshotRepo, cfg.SnapshotKey, logger)
	if err := appStore.Init(context.Background()); err != nil {
		logger.Error("failed to load application snapshot", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application store initialized", slog.String("key", cfg.SnapshotKey))

	authService := services.NewAuthService(appStore)
	contentService := services.NewContentService(appStore, wsHub)
	dashboardService := services.NewDashboardService(appStore)
	notificationService := services.NewNotificationService(logger)
	verificationService := services.NewVerificationService(cfg.OTPReferenceCode, notificationService, logger)
	paymentService := services.NewPaymentService(logger)
	insightService := services.NewInsightService(cfg.GeminiAPIKey, logger)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	eventsHandler := handlers.NewEventsHandler(contentService)
	contentHandler := handlers.NewContentHandler(contentService, appStore, uploader)
	registrationHandler := handlers.NewRegistrationHandler(verificationService, appStore)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, insightService, notificationService, appStore)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		eventsHandler,
		contentHandler,
		registrationHandler,
		paymentHandler,
		dashboardHandler,
		webSocketHandler,
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
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
