package handlers

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlePreCheckout answers Telegram's pre-checkout question. The checkout
// is approved only when the invoice payload matches the order this chat
// opened; anything else is stale and gets declined.
func (h *Handlers) HandlePreCheckout(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.PreCheckoutQuery
	if query == nil {
		return
	}

	chatID := query.From.ID
	order, bookingID := h.pendingOrder(chatID)

	if order == nil || bookingID != query.InvoicePayload {
		h.logger.Warn("Declining pre-checkout for unknown order",
			zap.Int64("chat_id", chatID),
			zap.String("payload", query.InvoicePayload),
		)
		b.AnswerPreCheckoutQuery(ctx, &bot.AnswerPreCheckoutQueryParams{
			PreCheckoutQueryID: query.ID,
			OK:                 false,
			ErrorMessage:       "This checkout has expired. Open your applications and try again.",
		})
		return
	}

	b.AnswerPreCheckoutQuery(ctx, &bot.AnswerPreCheckoutQueryParams{
		PreCheckoutQueryID: query.ID,
		OK:                 true,
	})
}

// HandleSuccessfulPayment runs phase two: submit the completed checkout to
// the backend for verification. Verification failure leaves the booking
// unpaid on the backend; the user is told either way.
func (h *Handlers) HandleSuccessfulPayment(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.SuccessfulPayment == nil {
		return
	}

	chatID := update.Message.Chat.ID
	payment := update.Message.SuccessfulPayment

	order, bookingID := h.pendingOrder(chatID)
	if order == nil || bookingID != payment.InvoicePayload {
		h.logger.Error("Successful payment without a pending order",
			zap.Int64("chat_id", chatID),
			zap.String("payload", payment.InvoicePayload),
		)
		h.sendError(ctx, b, chatID, "⚠️ Payment received but no matching order was found. Please contact support.")
		return
	}

	paymentID := payment.ProviderPaymentChargeID
	if paymentID == "" {
		paymentID = payment.TelegramPaymentChargeID
	}

	h.stateManager.ClearState(chatID)

	if err := h.payments.Complete(ctx, bookingID, order, paymentID); err != nil {
		h.logger.Error("Payment verification failed",
			zap.Int64("chat_id", chatID),
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		h.sendError(ctx, b, chatID, "⚠️ Payment verification failed. The booking is still marked unpaid; please contact support if you were charged.")
		return
	}

	h.sendMessage(ctx, b, chatID, "💰 Payment successful! Your booking is confirmed.")

	sess, err := h.auth.Current(ctx, chatID)
	if err != nil || sess == nil {
		return
	}
	text, keyboard, err := common.BuildApplicationsScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to refresh applications after payment", zap.Error(err))
		return
	}
	h.sendScreen(ctx, b, chatID, text, keyboard)
}

// pendingOrder returns the order this chat opened checkout for, if any.
func (h *Handlers) pendingOrder(chatID int64) (*model.PaymentOrder, string) {
	rawOrder, okO := h.stateManager.GetData(chatID, "payment_order")
	rawBooking, okB := h.stateManager.GetData(chatID, "payment_booking_id")
	if !okO || !okB {
		return nil, ""
	}

	order, _ := rawOrder.(*model.PaymentOrder)
	bookingID, _ := rawBooking.(string)
	if order == nil || bookingID == "" {
		return nil, ""
	}
	return order, bookingID
}
