package landlord

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Property management callbacks: starting the create/edit dialog, the
// availability step inside it, and the two-step delete confirmation.

// HandleAddProperty starts the create dialog.
func HandleAddProperty(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	h.StateManager.SetData(sess.ChatID, "property_mode", "create")
	h.StateManager.SetState(sess.ChatID, callbacktypes.UserState("property_name"))

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text: "➕ New property\n\n" +
			"Step 1 of 5: enter the property name.\n\n" +
			"/cancel to abort.",
	})
}

// HandleEdit starts the edit dialog for an owned listing. Edits replace the
// full record, so every field is collected again.
func HandleEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	propertyID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid edit callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	property := cachedOwnProperty(h, sess.ChatID, propertyID)
	if property == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Listing is out of date. Open /myproperties again.")
		return
	}

	h.StateManager.SetData(sess.ChatID, "property_mode", "edit")
	h.StateManager.SetData(sess.ChatID, "property_id", property.ID)
	h.StateManager.SetState(sess.ChatID, callbacktypes.UserState("property_name"))

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text: fmt.Sprintf(
			"✏️ Editing %s\n\n"+
				"Step 1 of 5: enter the property name (was: %s).\n\n"+
				"/cancel to abort.",
			property.Name, property.Name,
		),
	})
}

// HandleDelete asks for confirmation before deleting.
func HandleDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	propertyID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid delete callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	property := cachedOwnProperty(h, sess.ChatID, propertyID)
	if property == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ Listing is out of date. Open /myproperties again.")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	common.EditScreen(ctx, b, callback,
		fmt.Sprintf("🗑 Delete %s — %s?\n\nThis cannot be undone.", property.Name, property.Location),
		&models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{Text: "Yes, delete", CallbackData: common.ConfirmDelete + property.ID},
					{Text: "No, keep it", CallbackData: common.SectionProperties},
				},
			},
		},
	)
}

// HandleConfirmDelete deletes the listing and refetches the manager screen.
func HandleConfirmDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	propertyID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Invalid confirm-delete callback data", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	if err := h.Properties.Delete(ctx, sess.User.ID, propertyID); err != nil {
		h.Logger.Error("Failed to delete property",
			zap.String("property_id", propertyID),
			zap.Error(err),
		)
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.FeedbackFor(err))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "🗑 Property deleted")

	text, keyboard, err := common.BuildMyPropertiesScreen(ctx, h, sess)
	if err != nil {
		h.Logger.Error("Failed to refresh properties screen", zap.Error(err))
		return
	}
	common.EditScreen(ctx, b, callback, text, keyboard)
}

// HandleAvailability is step 4 of the property dialog, answered via buttons
// instead of typed text.
func HandleAvailability(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, ok := common.RequireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	if h.StateManager.GetState(sess.ChatID) != callbacktypes.UserState("property_availability") {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❓ This dialog has expired.")
		return
	}

	choice, err := common.ParseIDFromCallback(callback.Data)
	if err != nil || (choice != "yes" && choice != "no") {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid button data")
		return
	}

	h.StateManager.SetData(sess.ChatID, "draft_availability", choice == "yes")
	h.StateManager.SetState(sess.ChatID, callbacktypes.UserState("property_image_url"))

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text:   "Step 5 of 5: enter the image URL for the listing.",
	})
}

func cachedOwnProperty(h *callbacktypes.Handler, chatID int64, propertyID string) *model.Property {
	raw, ok := h.StateManager.GetData(chatID, common.KeyMyProperties)
	if !ok {
		return nil
	}
	mine, ok := raw.([]*model.Property)
	if !ok {
		return nil
	}
	for _, p := range mine {
		if p.ID == propertyID {
			return p
		}
	}
	return nil
}
