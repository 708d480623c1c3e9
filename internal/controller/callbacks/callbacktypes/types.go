package callbacktypes

import (
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"go.uber.org/zap"
)

// UserState mirrors the dialog state without importing the state package,
// keeping callback sub-packages free of an import cycle with handlers.
type UserState string

// StateManager is the slice of the dialog state machine the callback
// handlers need.
type StateManager interface {
	GetState(chatID int64) UserState
	SetState(chatID int64, state UserState)
	GetData(chatID int64, key string) (interface{}, bool)
	SetData(chatID int64, key string, value interface{})
	ClearState(chatID int64)
}

// Handler bundles the dependencies shared by every callback handler.
type Handler struct {
	Auth          *service.AuthService
	Catalog       *service.CatalogService
	Properties    *service.PropertyService
	Bookings      *service.BookingService
	Payments      *service.PaymentService
	Notifications *service.NotificationService
	StateManager  StateManager
	Logger        *zap.Logger

	// ProviderToken is the Telegram payments provider token used when
	// sending invoices.
	ProviderToken string
}
