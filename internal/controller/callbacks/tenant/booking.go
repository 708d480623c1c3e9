package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBook starts the booking dialog for a listing. The property is
// resolved from the page cached at render time, so the self-booking and
// availability guards fire without touching the network.
func HandleBook(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	propertyID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid book callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	property := cachedProperty(h, sess.ChatID, propertyID)
	if property == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Listing is out of date. Open /listings again.")
		return
	}

	if property.OwnedBy(sess.User.ID) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 You cannot book your own property.")
		return
	}
	if !property.Availability {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 This property is no longer available.")
		return
	}

	h.StateManager.SetData(sess.ChatID, "booking_property", property)
	h.StateManager.SetState(sess.ChatID, callbacktypes.UserState("booking_date"))

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text: fmt.Sprintf(
			"🏠 Booking %s — %s\n\n"+
				"Step 1 of 2: enter the move-in date (YYYY-MM-DD).\n\n"+
				"/cancel to abort.",
			property.Name, property.Location,
		),
	})
}

// HandleConfirmBooking submits the request collected by the date/time dialog.
func HandleConfirmBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	rawProperty, okP := h.StateManager.GetData(sess.ChatID, "booking_property")
	rawDate, okD := h.StateManager.GetData(sess.ChatID, "booking_date")
	rawTime, okT := h.StateManager.GetData(sess.ChatID, "booking_time")
	if !okP || !okD || !okT {
		h.StateManager.ClearState(sess.ChatID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Booking dialog expired. Start again from /listings.")
		return
	}

	property, _ := rawProperty.(*model.Property)
	date, _ := rawDate.(string)
	timeOfDay, _ := rawTime.(string)
	if property == nil || date == "" || timeOfDay == "" {
		h.StateManager.ClearState(sess.ChatID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Booking dialog expired. Start again from /listings.")
		return
	}

	if err := h.Bookings.Request(ctx, sess.User.ID, property, date, timeOfDay); err != nil {
		h.Logger.Error("Failed to request booking",
			zap.String("property_id", property.ID),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, service.ErrOwnProperty):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 You cannot book your own property.")
		case errors.Is(err, service.ErrNotAvailable):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 This property is no longer available.")
		default:
			common.AnswerCallbackAlert(ctx, b, callback.ID, common.FeedbackFor(err))
		}
		return
	}

	h.StateManager.ClearState(sess.ChatID)
	common.AnswerCallback(ctx, b, callback.ID, "✅ Booking request sent!")

	text, keyboard, err := common.BuildApplicationsScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to refresh applications after booking", zap.Error(err))
		return
	}
	common.EditScreen(ctx, b, callback, text, keyboard)
}

// HandleCancelDialog aborts the active dialog from a button press.
func HandleCancelDialog(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	h.StateManager.ClearState(sess.ChatID)
	common.AnswerCallback(ctx, b, callback.ID, "Cancelled")

	text, keyboard := common.BuildListingsScreen(ctx, h, sess, "")
	common.EditScreen(ctx, b, callback, text, keyboard)
}

func cachedProperty(h *callbacktypes.Handler, chatID int64, propertyID string) *model.Property {
	raw, ok := h.StateManager.GetData(chatID, common.KeyCatalog)
	if !ok {
		return nil
	}
	catalog, ok := raw.([]*model.Property)
	if !ok {
		return nil
	}
	for _, p := range catalog {
		if p.ID == propertyID {
			return p
		}
	}
	return nil
}
