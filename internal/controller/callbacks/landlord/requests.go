package landlord

import (
	"context"
	"errors"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Accept/Reject callbacks for incoming booking requests. After the backend
// records the decision the requests screen is refetched and edited in place,
// so the buttons for the decided request disappear.

func HandleAccept(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	decideRequest(ctx, b, callback, h, true)
}

func HandleReject(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	decideRequest(ctx, b, callback, h, false)
}

func decideRequest(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, accept bool) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	bookingID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid request callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	booking := cachedBooking(h, sess.ChatID, bookingID)
	if booking == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Request is out of date. Open booking requests again.")
		return
	}

	if accept {
		err = h.Bookings.Accept(ctx, sess.User.ID, booking)
	} else {
		err = h.Bookings.Reject(ctx, sess.User.ID, booking)
	}
	if err != nil {
		h.Logger.Error("Failed to decide booking request",
			zap.String("booking_id", bookingID),
			zap.Bool("accept", accept),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrNotPending) {
			common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 This request has already been decided.")
			return
		}
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.FeedbackFor(err))
		return
	}

	if accept {
		common.AnswerCallback(ctx, b, callback.ID, "✅ Request accepted")
	} else {
		common.AnswerCallback(ctx, b, callback.ID, "🚫 Request rejected")
	}

	text, keyboard, err := common.BuildRequestsScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to refresh requests screen", zap.Error(err))
		return
	}
	common.EditScreen(ctx, b, callback, text, keyboard)
}

func cachedBooking(h *callbacktypes.Handler, chatID int64, bookingID string) *model.Booking {
	raw, ok := h.StateManager.GetData(chatID, common.KeyBookings)
	if !ok {
		return nil
	}
	bookings, ok := raw.([]*model.Booking)
	if !ok {
		return nil
	}
	for _, b := range bookings {
		if b.ID == bookingID {
			return b
		}
	}
	return nil
}
