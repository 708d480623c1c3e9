package callbacks

import (
	"context"
	"strings"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/feed"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/landlord"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/tenant"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route dispatches a callback query to its handler by data pattern.
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	// ===== Navigation =====
	case data == common.BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)
	case data == common.Noop:
		common.HandleNoop(ctx, b, callback, h)
	case data == common.SectionListings:
		common.HandleSectionListings(ctx, b, callback, h)
	case data == common.SectionProperties:
		common.HandleSectionProperties(ctx, b, callback, h)
	case data == common.SectionApplications:
		common.HandleSectionApplications(ctx, b, callback, h)
	case data == common.SectionRequests:
		common.HandleSectionRequests(ctx, b, callback, h)
	case data == common.SectionNotifications:
		common.HandleSectionNotifications(ctx, b, callback, h)

	// ===== Tenant: browsing and booking =====
	case data == common.SearchPrompt:
		common.HandleSearchPrompt(ctx, b, callback, h)
	case data == common.ClearSearch:
		common.HandleClearSearch(ctx, b, callback, h)
	case strings.HasPrefix(data, common.BookProperty):
		tenant.HandleBook(ctx, b, callback, h)
	case data == common.ConfirmBooking:
		tenant.HandleConfirmBooking(ctx, b, callback, h)
	case data == common.CancelDialog:
		tenant.HandleCancelDialog(ctx, b, callback, h)
	case strings.HasPrefix(data, common.PayBooking):
		tenant.HandlePay(ctx, b, callback, h)

	// ===== Landlord: requests and listings =====
	case strings.HasPrefix(data, common.AcceptRequest):
		landlord.HandleAccept(ctx, b, callback, h)
	case strings.HasPrefix(data, common.RejectRequest):
		landlord.HandleReject(ctx, b, callback, h)
	case data == common.AddProperty:
		landlord.HandleAddProperty(ctx, b, callback, h)
	case strings.HasPrefix(data, common.EditProperty):
		landlord.HandleEdit(ctx, b, callback, h)
	case strings.HasPrefix(data, common.ConfirmDelete):
		landlord.HandleConfirmDelete(ctx, b, callback, h)
	case strings.HasPrefix(data, common.DeleteProperty):
		landlord.HandleDelete(ctx, b, callback, h)
	case strings.HasPrefix(data, common.SetAvailability):
		landlord.HandleAvailability(ctx, b, callback, h)

	// ===== Notifications =====
	case strings.HasPrefix(data, common.MarkRead):
		feed.HandleMarkRead(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
