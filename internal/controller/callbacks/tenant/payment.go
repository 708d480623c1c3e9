package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common/formatting"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlePay runs phase one of the payment flow: create an order for the
// booking on the backend, remember it for the pre-checkout exchange, and
// open the Telegram checkout with an invoice. The booking id travels in the
// invoice payload so the later stages can find the order again.
func HandlePay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	bookingID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid pay callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	booking := cachedBooking(h, sess.ChatID, bookingID)
	if booking == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Booking is out of date. Open your applications again.")
		return
	}

	order, err := h.Payments.Start(ctx, booking)
	if err != nil {
		h.Logger.Error("Failed to create payment order",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrNotEligible) {
			common.AnswerCallbackAlert(ctx, b, callback.ID, "🚫 This booking cannot be paid for.")
			return
		}
		common.AnswerCallbackAlert(ctx, b, callback.ID, "⚠️ Unable to start payment. Please try again.")
		return
	}

	h.StateManager.SetData(sess.ChatID, "payment_order", order)
	h.StateManager.SetData(sess.ChatID, "payment_booking_id", booking.ID)

	common.AnswerCallback(ctx, b, callback.ID, "Opening checkout…")

	_, err = b.SendInvoice(ctx, &bot.SendInvoiceParams{
		ChatID:        sess.ChatID,
		Title:         "RentHub",
		Description:   fmt.Sprintf("Room booking payment — %s for %s at %s", formatting.FormatAmount(order.Amount, order.Currency), booking.Date, booking.Time),
		Payload:       booking.ID,
		ProviderToken: h.ProviderToken,
		Currency:      order.Currency,
		Prices: []models.LabeledPrice{
			{Label: "Rent", Amount: int(order.Amount)},
		},
		NeedName:  true,
		NeedEmail: true,
	})
	if err != nil {
		h.Logger.Error("Failed to send invoice",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: sess.ChatID,
			Text:   "⚠️ Could not open checkout. Please try again.",
		})
	}
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
