package common

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Navigation callbacks: dashboard sections and the back button. Each press
// refetches the section's data and edits the screen in place.

func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard, err := BuildDashboardScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to build dashboard", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, FeedbackFor(err))
		return
	}

	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

func HandleSectionListings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard := BuildListingsScreen(ctx, h, sess, "")
	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

func HandleSectionProperties(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard, err := BuildMyPropertiesScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to build properties screen", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, FeedbackFor(err))
		return
	}

	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

func HandleSectionApplications(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard, err := BuildApplicationsScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to build applications screen", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, FeedbackFor(err))
		return
	}

	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

func HandleSectionRequests(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard, err := BuildRequestsScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to build requests screen", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, FeedbackFor(err))
		return
	}

	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

func HandleSectionNotifications(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard, err := BuildFeedScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to build feed screen", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, FeedbackFor(err))
		return
	}

	AnswerCallback(ctx, b, callback.ID, "")
	EditScreen(ctx, b, callback, text, keyboard)
}

// HandleSearchPrompt starts the search dialog; the typed query is handled by
// the text message handler.
func HandleSearchPrompt(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	h.StateManager.SetState(sess.ChatID, callbacktypes.UserState("search_query"))
	AnswerCallback(ctx, b, callback.ID, "")

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text:   "🔍 Type a name or location to filter listings.\n\n/cancel to abort.",
	})
}

// HandleClearSearch re-renders the listings without a filter.
func HandleClearSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	text, keyboard := BuildListingsScreen(ctx, h, sess, "")
	AnswerCallback(ctx, b, callback.ID, "Filter cleared")
	EditScreen(ctx, b, callback, text, keyboard)
}

// HandleNoop just acknowledges decorative buttons.
func HandleNoop(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, _ *callbacktypes.Handler) {
	AnswerCallback(ctx, b, callback.ID, "")
}
