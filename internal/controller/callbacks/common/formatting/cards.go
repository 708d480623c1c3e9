package formatting

import (
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

// FormatPropertyCard renders one catalog entry for the listings screen.
func FormatPropertyCard(index int, p *model.Property) string {
	availability := "🟢 Available"
	if !p.Availability {
		availability = "🔴 Not available"
	}

	return fmt.Sprintf(
		"%d. 🏠 %s\n"+
			"📍 %s\n"+
			"💵 %s · %s",
		index, p.Name, p.Location, FormatRent(p.Price), availability,
	)
}

// FormatOwnPropertyCard renders one of the owner's listings.
func FormatOwnPropertyCard(p *model.Property) string {
	availability := "🟢 Available"
	if !p.Availability {
		availability = "🔴 Not available"
	}

	return fmt.Sprintf(
		"🏠 %s\n"+
			"📍 %s\n"+
			"💵 %s · %s",
		p.Name, p.Location, FormatRent(p.Price), availability,
	)
}

// FormatBookingCard renders one booking for the applications screen.
func FormatBookingCard(b *model.Booking) string {
	status := GetBookingStatusDisplay(b.Status)
	payment := GetPaymentStatusDisplay(b.PaymentStatus)

	return fmt.Sprintf(
		"%s Booking · %s\n"+
			"📅 %s at %s\n"+
			"💵 ₹%d · Payment: %s %s",
		status.Emoji, status.Text,
		b.Date, b.Time,
		b.Price, payment.Emoji, payment.Text,
	)
}

// FormatRequestCard renders one incoming request for the landlord screen.
func FormatRequestCard(b *model.Booking) string {
	status := GetBookingStatusDisplay(b.Status)

	return fmt.Sprintf(
		"%s Request · %s\n"+
			"📅 %s at %s\n"+
			"💵 ₹%d",
		status.Emoji, status.Text,
		b.Date, b.Time,
		b.Price,
	)
}

// FormatNotificationCard renders one feed entry. Unread entries carry a
// leading dot so they stand out in the list.
func FormatNotificationCard(n *model.Notification) string {
	marker := GetNotificationDisplay(n.Type)
	unread := ""
	if !n.IsRead {
		unread = "🔵 "
	}

	return fmt.Sprintf(
		"%s%s %s\n"+
			"%s\n"+
			"🕒 %s",
		unread, marker, n.Title,
		n.Message,
		n.CreatedAt.Format("02 Jan 2006 15:04"),
	)
}
