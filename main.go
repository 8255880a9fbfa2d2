package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"portfolio-backend/internal/cloudinary"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/server"
	"portfolio-backend/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// HTTP access log
	accessLog := logrus.New()
	accessLog.SetFormatter(&logrus.JSONFormatter{})

	// External collaborators
	m := mailer.NewSMTPMailer(
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password,
		cfg.Mail.From, cfg.Mail.FrontendURL, logger,
	)
	gallery := cloudinary.NewClient(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret, logger)

	notifier, err := notify.NewTelegramNotifier(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
		notifier = nil
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Periodic denylist cleanup
	denylistRepo := repository.NewDenylistRepository(db, logger)
	sweeper := service.NewDenylistSweeper(denylistRepo, logger, cfg.Auth.TokenTTL)
	go sweeper.Run(ctx)

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, accessLog, m, gallery, notifier)
	if err := srv.Run(ctx, cfg.Server.Port); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Application stopped.")
}
