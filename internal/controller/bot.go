package controller

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/handlers"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/state"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	auth *service.AuthService,
	catalog *service.CatalogService,
	properties *service.PropertyService,
	bookings *service.BookingService,
	payments *service.PaymentService,
	notifications *service.NotificationService,
	providerToken string,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()

	deps := &callbacktypes.Handler{
		Auth:          auth,
		Catalog:       catalog,
		Properties:    properties,
		Bookings:      bookings,
		Payments:      payments,
		Notifications: notifications,
		StateManager:  state.NewAdapter(stateManager),
		Logger:        logger,
		ProviderToken: providerToken,
	}

	return &BotController{
		bot:             botInstance,
		handlers:        handlers.NewHandlers(deps, stateManager),
		callbackHandler: callbacks.NewHandler(deps),
		logger:          logger,
	}
}

// RegisterHandlers registers all command, dialog and callback handlers.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/signup", bot.MatchTypeExact, c.handlers.HandleSignup)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/dashboard", bot.MatchTypeExact, c.handlers.HandleDashboard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/listings", bot.MatchTypeExact, c.handlers.HandleListings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myproperties", bot.MatchTypeExact, c.handlers.HandleMyProperties)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Free text feeds the active dialog step
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline button presses
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Payment updates arrive outside the text/callback handler types
	c.bot.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.PreCheckoutQuery != nil
	}, c.handlers.HandlePreCheckout)
	c.bot.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil && update.Message.SuccessfulPayment != nil
	}, c.handlers.HandleSuccessfulPayment)

	return c.setCommands(ctx)
}

// setCommands installs the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start the bot"},
		{Command: "listings", Description: "🏘 Browse available rooms"},
		{Command: "dashboard", Description: "📊 Applications, requests and notifications"},
		{Command: "myproperties", Description: "🏠 Manage your listings"},
		{Command: "login", Description: "🔑 Sign in"},
		{Command: "signup", Description: "📝 Create an account"},
		{Command: "logout", Description: "👋 Sign out"},
		{Command: "help", Description: "❓ Command reference"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
