package handlers

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart greets the chat. A logged-in chat goes straight to the
// dashboard; a logged-out one gets the landing text.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	sess, err := h.auth.Current(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return
	}

	if sess == nil {
		h.sendMessage(ctx, b, chatID, common.BuildEntryScreen())
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("👋 Welcome back, %s!", sess.User.FirstName()))

	text, keyboard, err := common.BuildDashboardScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		h.notifyError(ctx, b, chatID, err)
		return
	}
	h.sendScreen(ctx, b, chatID, text, keyboard)
}

// HandleHelp lists all commands.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Commands:\n\n" +
		"Account:\n" +
		"/login — sign in\n" +
		"/signup — create an account\n" +
		"/logout — sign out\n\n" +
		"Tenant:\n" +
		"/listings — browse available rooms\n" +
		"/dashboard — applications, requests and notifications\n\n" +
		"Landlord:\n" +
		"/myproperties — manage your listings\n\n" +
		"/cancel — abort the current dialog"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleLogin starts the login dialog.
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	sess, err := h.auth.Current(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return
	}
	if sess != nil {
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("You are already logged in as %s. Use /logout first.", sess.User.Name))
		return
	}

	h.stateManager.SetState(chatID, state.StateLoginEmail)
	h.sendMessage(ctx, b, chatID, "🔑 Login\n\nStep 1 of 2: enter your email.\n\n/cancel to abort.")
}

// HandleSignup starts the signup dialog.
func (h *Handlers) HandleSignup(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	sess, err := h.auth.Current(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return
	}
	if sess != nil {
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("You are already logged in as %s. Use /logout first.", sess.User.Name))
		return
	}

	h.stateManager.SetState(chatID, state.StateSignupName)
	h.sendMessage(ctx, b, chatID, "📝 Sign up\n\nStep 1 of 3: enter your full name.\n\n/cancel to abort.")
}

// HandleLogout drops the chat's session.
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID
	if err := h.auth.Logout(ctx, chatID); err != nil {
		h.logger.Error("Failed to log out", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return
	}

	h.stateManager.ClearState(chatID)
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("👋 Goodbye, %s! You are logged out.", sess.User.FirstName()))
}

// HandleDashboard renders the overview screen.
func (h *Handlers) HandleDashboard(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	text, keyboard, err := common.BuildDashboardScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		h.notifyError(ctx, b, update.Message.Chat.ID, err)
		return
	}
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, keyboard)
}

// HandleListings renders the tenant browse screen.
func (h *Handlers) HandleListings(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	text, keyboard := common.BuildListingsScreen(ctx, h.deps, sess, "")
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, keyboard)
}

// HandleMyProperties renders the landlord's listing manager.
func (h *Handlers) HandleMyProperties(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	text, keyboard, err := common.BuildMyPropertiesScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to build properties screen", zap.Error(err))
		h.notifyError(ctx, b, update.Message.Chat.ID, err)
		return
	}
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, keyboard)
}

// HandleCancel aborts the current dialog.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if h.stateManager.GetState(chatID) == state.StateNone {
		h.sendMessage(ctx, b, chatID, "Nothing to cancel.")
		return
	}

	h.stateManager.ClearState(chatID)
	h.sendMessage(ctx, b, chatID, "❌ Cancelled.")
}
