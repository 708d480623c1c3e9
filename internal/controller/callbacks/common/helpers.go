package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions shared by all callback handlers.

// AnswerCallback acknowledges a callback query with an optional toast text.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert acknowledges a callback query with a blocking alert
// popup. Used for terminal failures the user must see.
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback extracts the origin message of a callback query.
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseIDFromCallback extracts the id part of prefixed callback data.
// For example "accept:68a1f20c" -> "68a1f20c".
func ParseIDFromCallback(data string) (string, error) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid callback data format")
	}
	return parts[1], nil
}

// EditScreen replaces the callback's origin message with a new screen. The
// targeted-refetch flow edits in place instead of resetting the whole view.
func EditScreen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string, keyboard *models.InlineKeyboardMarkup) error {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return fmt.Errorf("callback has no accessible message")
	}

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	return err
}
