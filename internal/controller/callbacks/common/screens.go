package common

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common/formatting"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// Screen builders fetch fresh data from the backend, cache the rendered
// list in the chat's view state, and return text plus keyboard. Both the
// command handlers (send) and the callback handlers (edit in place after a
// mutation) render through these, so every screen shows backend truth.

const listingsPageSize = 8

// BuildEntryScreen is the logged-out landing text.
func BuildEntryScreen() string {
	return "🏠 Welcome to RentHub — smart rentals for students & professionals.\n\n" +
		"/login — sign in to your account\n" +
		"/signup — create a new account\n" +
		"/help — all commands"
}

// BuildDashboardScreen renders the overview: application counters and the
// section navigation. An unread-feed badge is appended to the header when
// at least one notification is unread.
func BuildDashboardScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session) (string, *models.InlineKeyboardMarkup, error) {
	bookings, err := h.Bookings.ForUser(ctx, sess.User.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load bookings: %w", err)
	}

	pending, accepted := 0, 0
	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusPending:
			pending++
		case model.BookingStatusAccepted:
			accepted++
		}
	}

	badge := ""
	notificationsLabel := "🔔 Notifications"
	if feed, err := h.Notifications.Feed(ctx, sess.User.ID); err == nil && model.HasUnread(feed) {
		badge = " 🔵"
		notificationsLabel += " •"
	}

	text := fmt.Sprintf(
		"📊 Dashboard — %s%s\n\n"+
			"Total applications: %d\n"+
			"⏳ Pending: %d\n"+
			"✅ Accepted: %d\n\n"+
			"Use the Tenant side to explore rooms and the Landlord side to manage "+
			"your properties and booking requests.",
		sess.User.Name, badge, len(bookings), pending, accepted,
	)

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📄 My applications", CallbackData: SectionApplications},
				{Text: "📥 Booking requests", CallbackData: SectionRequests},
			},
			{
				{Text: notificationsLabel, CallbackData: SectionNotifications},
				{Text: "🏘 Browse listings", CallbackData: SectionListings},
			},
			{
				{Text: "🏠 My properties", CallbackData: SectionProperties},
			},
		},
	}

	return text, keyboard, nil
}

// BuildListingsScreen renders the tenant browse view. The search filter is
// re-applied on every render; the viewer's own listings are hidden. The
// rendered page is cached in view state so Book presses resolve the
// property without another network call.
func BuildListingsScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session, query string) (string, *models.InlineKeyboardMarkup) {
	catalog := h.Catalog.All(ctx)
	visible := service.Browsable(service.Search(query, catalog), sess.User.ID)

	shown := visible
	more := 0
	if len(shown) > listingsPageSize {
		more = len(shown) - listingsPageSize
		shown = shown[:listingsPageSize]
	}

	h.StateManager.SetData(sess.ChatID, KeyCatalog, shown)
	h.StateManager.SetData(sess.ChatID, KeyQuery, query)

	text := "🏘 Available Rooms\n"
	if query != "" {
		text += fmt.Sprintf("🔍 Filter: %q\n", query)
	}
	text += "\n"

	if len(shown) == 0 {
		text += "No properties available right now."
	}
	for i, p := range shown {
		text += formatting.FormatPropertyCard(i+1, p) + "\n\n"
	}
	if more > 0 {
		text += fmt.Sprintf("…and %d more. Refine your search to narrow the list.", more)
	}

	var rows [][]models.InlineKeyboardButton
	var bookRow []models.InlineKeyboardButton
	for i, p := range shown {
		if !p.Availability {
			continue
		}
		bookRow = append(bookRow, models.InlineKeyboardButton{
			Text:         fmt.Sprintf("Book %d", i+1),
			CallbackData: BookProperty + p.ID,
		})
		if len(bookRow) == 4 {
			rows = append(rows, bookRow)
			bookRow = nil
		}
	}
	if len(bookRow) > 0 {
		rows = append(rows, bookRow)
	}

	controls := []models.InlineKeyboardButton{{Text: "🔍 Search", CallbackData: SearchPrompt}}
	if query != "" {
		controls = append(controls, models.InlineKeyboardButton{Text: "✖️ Clear filter", CallbackData: ClearSearch})
	}
	rows = append(rows, controls)
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅️ Dashboard", CallbackData: BackToMain}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BuildMyPropertiesScreen renders the landlord's listing manager.
func BuildMyPropertiesScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session) (string, *models.InlineKeyboardMarkup, error) {
	mine, err := h.Catalog.Mine(ctx, sess.User.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load own properties: %w", err)
	}

	h.StateManager.SetData(sess.ChatID, KeyMyProperties, mine)

	text := "🏠 My Properties\n\n"
	if len(mine) == 0 {
		text += "You haven't added any properties yet."
	}

	var rows [][]models.InlineKeyboardButton
	for i, p := range mine {
		text += fmt.Sprintf("%d. %s\n\n", i+1, formatting.FormatOwnPropertyCard(p))
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: fmt.Sprintf("✏️ Edit %d", i+1), CallbackData: EditProperty + p.ID},
			{Text: fmt.Sprintf("🗑 Delete %d", i+1), CallbackData: DeleteProperty + p.ID},
		})
	}

	rows = append(rows, []models.InlineKeyboardButton{{Text: "➕ Add property", CallbackData: AddProperty}})
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅️ Dashboard", CallbackData: BackToMain}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// BuildApplicationsScreen renders the bookings the user has sent. Pay
// buttons appear only on accepted, unpaid bookings.
func BuildApplicationsScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session) (string, *models.InlineKeyboardMarkup, error) {
	bookings, err := h.Bookings.ForUser(ctx, sess.User.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load bookings: %w", err)
	}

	h.StateManager.SetData(sess.ChatID, KeyBookings, bookings)

	var applications []*model.Booking
	for _, b := range bookings {
		if b.From == sess.User.ID {
			applications = append(applications, b)
		}
	}

	text := "📄 My Applications\n\n"
	if len(applications) == 0 {
		text += "No applications yet."
	}

	var rows [][]models.InlineKeyboardButton
	for i, b := range applications {
		text += fmt.Sprintf("%d. %s\n\n", i+1, formatting.FormatBookingCard(b))
		if b.PaymentEligible() {
			rows = append(rows, []models.InlineKeyboardButton{
				{Text: fmt.Sprintf("💳 Pay now %d (₹%d)", i+1, b.Price), CallbackData: PayBooking + b.ID},
			})
		}
	}

	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅️ Dashboard", CallbackData: BackToMain}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// BuildRequestsScreen renders incoming booking requests for the landlord.
// Accept/Reject controls are only rendered while a request is pending.
func BuildRequestsScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session) (string, *models.InlineKeyboardMarkup, error) {
	bookings, err := h.Bookings.ForUser(ctx, sess.User.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load bookings: %w", err)
	}

	h.StateManager.SetData(sess.ChatID, KeyBookings, bookings)

	requests := service.RequestsForOwner(bookings, sess.User.ID)

	text := "📥 Booking Requests\n\n"
	if len(requests) == 0 {
		text += "No requests yet."
	}

	var rows [][]models.InlineKeyboardButton
	for i, b := range requests {
		text += fmt.Sprintf("%d. %s\n\n", i+1, formatting.FormatRequestCard(b))
		if b.Decidable() {
			rows = append(rows, []models.InlineKeyboardButton{
				{Text: fmt.Sprintf("✅ Accept %d", i+1), CallbackData: AcceptRequest + b.ID},
				{Text: fmt.Sprintf("🚫 Reject %d", i+1), CallbackData: RejectRequest + b.ID},
			})
		}
	}

	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅️ Dashboard", CallbackData: BackToMain}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// BuildFeedScreen renders the notification feed in backend order.
func BuildFeedScreen(ctx context.Context, h *callbacktypes.Handler, sess *model.Session) (string, *models.InlineKeyboardMarkup, error) {
	feed, err := h.Notifications.Feed(ctx, sess.User.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load notifications: %w", err)
	}

	text := "🔔 Notifications\n\n"
	if len(feed) == 0 {
		text += "No notifications yet."
	}

	var rows [][]models.InlineKeyboardButton
	for i, n := range feed {
		text += fmt.Sprintf("%d. %s\n\n", i+1, formatting.FormatNotificationCard(n))
		if !n.IsRead {
			rows = append(rows, []models.InlineKeyboardButton{
				{Text: fmt.Sprintf("Mark read %d", i+1), CallbackData: MarkRead + n.ID},
			})
		}
	}

	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅️ Dashboard", CallbackData: BackToMain}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}
