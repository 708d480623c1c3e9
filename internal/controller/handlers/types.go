package handlers

import (
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/callbacktypes"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/state"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"go.uber.org/zap"
)

// Handlers holds the dependencies for command and dialog handling. The same
// dependency bundle is shared with the callback router so both sides render
// through the same screen builders.
type Handlers struct {
	auth          *service.AuthService
	catalog       *service.CatalogService
	properties    *service.PropertyService
	bookings      *service.BookingService
	payments      *service.PaymentService
	notifications *service.NotificationService
	stateManager  *state.Manager
	logger        *zap.Logger

	deps *callbacktypes.Handler
}

// NewHandlers creates the command handlers from the shared dependency bundle.
func NewHandlers(deps *callbacktypes.Handler, stateManager *state.Manager) *Handlers {
	return &Handlers{
		auth:          deps.Auth,
		catalog:       deps.Catalog,
		properties:    deps.Properties,
		bookings:      deps.Bookings,
		payments:      deps.Payments,
		notifications: deps.Notifications,
		stateManager:  stateManager,
		logger:        deps.Logger,
		deps:          deps,
	}
}
