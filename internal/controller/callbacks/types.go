package callbacks

import (
	"context"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler wraps the shared dependency bundle with the entry point the bot
// registers for callback queries.
type Handler struct {
	*callbacktypes.Handler
}

// StateManager is re-exported for callers wiring the handler.
type StateManager = callbacktypes.StateManager

func NewHandler(inner *callbacktypes.Handler) *Handler {
	return &Handler{Handler: inner}
}

// HandleCallbackQuery is the entry point for all inline button presses.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}
