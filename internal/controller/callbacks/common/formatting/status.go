package formatting

import "github.com/RuthlessG-CYBER/renthub-bot/internal/model"

// StatusDisplay pairs an emoji with a short label.
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay returns the display for a booking status.
func GetBookingStatusDisplay(status model.BookingStatus) StatusDisplay {
	displays := map[model.BookingStatus]StatusDisplay{
		model.BookingStatusPending:  {"⏳", "Pending"},
		model.BookingStatusAccepted: {"✅", "Accepted"},
		model.BookingStatusRejected: {"🚫", "Rejected"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}

// GetPaymentStatusDisplay returns the display for a payment status. An
// absent status reads as "Pending", matching how the dashboard renders
// bookings that never saw a payment attempt.
func GetPaymentStatusDisplay(status model.PaymentStatus) StatusDisplay {
	displays := map[model.PaymentStatus]StatusDisplay{
		model.PaymentStatusPending: {"💤", "Pending"},
		model.PaymentStatusSuccess: {"💰", "Paid"},
		model.PaymentStatusFailed:  {"⚠️", "Failed"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"💤", "Pending"}
}

// GetNotificationDisplay returns the marker for a notification type.
func GetNotificationDisplay(t model.NotificationType) string {
	markers := map[model.NotificationType]string{
		model.NotificationInfo:    "ℹ️",
		model.NotificationSuccess: "✅",
		model.NotificationWarning: "⚠️",
		model.NotificationAlert:   "🚨",
	}

	if marker, ok := markers[t]; ok {
		return marker
	}

	return "ℹ️"
}
