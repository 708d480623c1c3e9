package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrOwnProperty means a tenant tried to book their own listing. The
	// guard fires before any network call is made.
	ErrOwnProperty = errors.New("cannot book your own property")

	// ErrNotAvailable means the listing is flagged unavailable.
	ErrNotAvailable = errors.New("property is not available")

	// ErrNotPending means the booking already carries a terminal decision.
	ErrNotPending = errors.New("booking is not pending")
)

type bookingAPI interface {
	ListBookings(ctx context.Context, userID string) ([]*model.Booking, error)
	CreateBooking(ctx context.Context, req model.BookingRequest) error
	AcceptBooking(ctx context.Context, ownerID, bookingID string) error
	RejectBooking(ctx context.Context, ownerID, bookingID string) error
}

// BookingService drives the request/accept/reject workflow. Status lives on
// the backend; this layer only enforces the client-side guards and refuses
// calls that could never succeed.
type BookingService struct {
	api    bookingAPI
	logger *zap.Logger
}

func NewBookingService(api bookingAPI, logger *zap.Logger) *BookingService {
	return &BookingService{api: api, logger: logger}
}

// Request submits a booking for a property on behalf of the tenant. The
// price is snapshotted from the listing at request time.
func (s *BookingService) Request(ctx context.Context, tenantID string, property *model.Property, date, timeOfDay string) error {
	if property.OwnedBy(tenantID) {
		return ErrOwnProperty
	}
	if !property.Availability {
		return ErrNotAvailable
	}

	req := model.BookingRequest{
		From:  tenantID,
		To:    property.OwnerID,
		Date:  date,
		Time:  timeOfDay,
		Price: property.Price,
	}

	if err := s.api.CreateBooking(ctx, req); err != nil {
		return fmt.Errorf("request booking: %w", err)
	}

	s.logger.Info("Booking requested",
		zap.String("tenant_id", tenantID),
		zap.String("owner_id", property.OwnerID),
		zap.String("property_id", property.ID),
		zap.Int64("price", property.Price),
	)

	return nil
}

// ForUser fetches all bookings where the user is requester or target.
func (s *BookingService) ForUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return s.api.ListBookings(ctx, userID)
}

// RequestsForOwner filters the fetched bookings down to the ones addressed
// to the owner, the landlord dashboard's request list.
func RequestsForOwner(bookings []*model.Booking, ownerID string) []*model.Booking {
	var result []*model.Booking
	for _, b := range bookings {
		if b.To == ownerID {
			result = append(result, b)
		}
	}
	return result
}

// Accept records the owner's accept decision. Only pending bookings may
// transition; accepted and rejected are terminal.
func (s *BookingService) Accept(ctx context.Context, ownerID string, booking *model.Booking) error {
	if !booking.Decidable() {
		return ErrNotPending
	}

	if err := s.api.AcceptBooking(ctx, ownerID, booking.ID); err != nil {
		return fmt.Errorf("accept booking: %w", err)
	}

	s.logger.Info("Booking accepted",
		zap.String("owner_id", ownerID),
		zap.String("booking_id", booking.ID),
	)

	return nil
}

// Reject records the owner's reject decision.
func (s *BookingService) Reject(ctx context.Context, ownerID string, booking *model.Booking) error {
	if !booking.Decidable() {
		return ErrNotPending
	}

	if err := s.api.RejectBooking(ctx, ownerID, booking.ID); err != nil {
		return fmt.Errorf("reject booking: %w", err)
	}

	s.logger.Info("Booking rejected",
		zap.String("owner_id", ownerID),
		zap.String("booking_id", booking.ID),
	)

	return nil
}
