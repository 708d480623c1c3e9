package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/api"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/app"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/config"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting RentHub bot",
		zap.String("environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session store database
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Backend client and services
	client := api.NewClient(cfg.APIBaseURL, logger)
	sessions := session.NewStore(pool, logger)

	authService := service.NewAuthService(client, sessions, logger)
	catalogService := service.NewCatalogService(client, logger)
	propertyService := service.NewPropertyService(client, logger)
	bookingService := service.NewBookingService(client, logger)
	paymentService := service.NewPaymentService(client, logger)
	notificationService := service.NewNotificationService(client, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		authService,
		catalogService,
		propertyService,
		bookingService,
		paymentService,
		notificationService,
		cfg.ProviderToken,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	notifier := app.NewNotifier(b, sessions, notificationService, cfg.NotifyInterval, logger)
	notifier.Start(ctx)
	defer notifier.Stop()

	logger.Info("🚀 Bot is running, press Ctrl+C to stop")

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
