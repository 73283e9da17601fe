package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/api"
	"github.com/atelierbellemare/atelier-backend/internal/config"
	"github.com/atelierbellemare/atelier-backend/internal/database"
	"github.com/atelierbellemare/atelier-backend/internal/mailer"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/storage"
	"github.com/atelierbellemare/atelier-backend/internal/websocket"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadWithValidation()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("starting atelier backend")
	cfg.LogConfig(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	imageStorage, err := storage.NewLocalStorage(cfg.MediaStoragePath)
	if err != nil {
		logger.Error("failed to initialize media storage", "error", err, "path", cfg.MediaStoragePath)
		os.Exit(1)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	notifySvc := notifier.NewService(
		smtpMailer,
		repository.NewInquiryRepository(db),
		repository.NewPaintingRepository(db),
		cfg.MailFrom,
		cfg.NotifyAddresses,
		cfg.Site.SiteName,
		logger,
	)

	hub := websocket.NewHub(logger)
	go hub.Run()

	e := api.NewRouter(&api.RouterConfig{
		DB:           db,
		ImageStorage: imageStorage,
		Notifier:     notifySvc,
		Hub:          hub,
		Config:       cfg,
		Logger:       logger,
	})

	addr := fmt.Sprintf(":%d", cfg.APIPort)
	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
