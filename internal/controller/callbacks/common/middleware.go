package common

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/api"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// RequireSession re-reads the chat's session for a callback. The store is
// not treated as reactive; every button press resolves the session fresh.
func RequireSession(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) (*model.Session, bool) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return nil, false
	}

	sess, err := h.Auth.Current(ctx, msg.Chat.ID)
	if err != nil {
		h.Logger.Error("Failed to load session",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err),
		)
		AnswerCallbackAlert(ctx, b, callback.ID, "❌ Something went wrong. Please try again.")
		return nil, false
	}

	if sess == nil {
		AnswerCallbackAlert(ctx, b, callback.ID, "🔒 You are logged out. Use /login first.")
		return nil, false
	}

	return sess, true
}

// FeedbackFor is the single place mapping a failed backend call to user
// feedback, keyed by the typed error kind.
func FeedbackFor(err error) string {
	switch api.KindOf(err) {
	case api.KindNetwork:
		return "🌐 Network problem. Please try again."
	case api.KindValidation:
		return "❌ The backend rejected the request. Check the details and try again."
	case api.KindAuth:
		return "🔒 Not allowed. Try logging in again with /login."
	case api.KindNotFound:
		return "❓ That record no longer exists. The view may be stale."
	default:
		return "⚠️ Server error. Please try again later."
	}
}
