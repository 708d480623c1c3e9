package feed

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleMarkRead flags a notification as read on the backend and refetches
// the feed so the unread marker and button disappear.
func HandleMarkRead(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	notificationID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid mark-read callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	if err := h.Notifications.MarkRead(ctx, sess.User.ID, notificationID); err != nil {
		h.Logger.Error("Failed to mark notification read",
			zap.String("notification_id", notificationID),
			zap.Error(err),
		)
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.FeedbackFor(err))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "Marked as read")

	text, keyboard, err := common.BuildFeedScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to refresh feed screen", zap.Error(err))
		return
	}
	common.EditScreen(ctx, b, callback, text, keyboard)
}
