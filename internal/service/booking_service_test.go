package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type mockBookingAPI struct {
	bookings []*model.Booking

	createCalls int
	lastRequest model.BookingRequest

	acceptCalls int
	rejectCalls int
	err         error
}

func (m *mockBookingAPI) ListBookings(ctx context.Context, userID string) ([]*model.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

func (m *mockBookingAPI) CreateBooking(ctx context.Context, req model.BookingRequest) error {
	m.createCalls++
	m.lastRequest = req
	return m.err
}

func (m *mockBookingAPI) AcceptBooking(ctx context.Context, ownerID, bookingID string) error {
	m.acceptCalls++
	return m.err
}

func (m *mockBookingAPI) RejectBooking(ctx context.Context, ownerID, bookingID string) error {
	m.rejectCalls++
	return m.err
}

func TestRequest_RefusesOwnPropertyWithoutNetworkCall(t *testing.T) {
	api := &mockBookingAPI{}
	svc := NewBookingService(api, zap.NewNop())

	property := &model.Property{ID: "p1", OwnerID: "user-1", Availability: true, Price: 8000}

	err := svc.Request(context.Background(), "user-1", property, "2026-09-15", "14:00")
	if !errors.Is(err, ErrOwnProperty) {
		t.Fatalf("expected ErrOwnProperty, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatalf("expected no backend call, got %d", api.createCalls)
	}
}

func TestRequest_RefusesUnavailableProperty(t *testing.T) {
	api := &mockBookingAPI{}
	svc := NewBookingService(api, zap.NewNop())

	property := &model.Property{ID: "p1", OwnerID: "owner-1", Availability: false, Price: 8000}

	err := svc.Request(context.Background(), "tenant-1", property, "2026-09-15", "14:00")
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected ErrNotAvailable, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatalf("expected no backend call, got %d", api.createCalls)
	}
}

func TestRequest_SnapshotsPriceAndAddresses(t *testing.T) {
	api := &mockBookingAPI{}
	svc := NewBookingService(api, zap.NewNop())

	property := &model.Property{ID: "p1", OwnerID: "owner-1", Availability: true, Price: 8500}

	err := svc.Request(context.Background(), "tenant-1", property, "2026-09-15", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.createCalls != 1 {
		t.Fatalf("expected 1 backend call, got %d", api.createCalls)
	}
	req := api.lastRequest
	if req.From != "tenant-1" || req.To != "owner-1" {
		t.Fatalf("wrong addressing: from=%s to=%s", req.From, req.To)
	}
	if req.Price != 8500 {
		t.Fatalf("expected snapshotted price 8500, got %d", req.Price)
	}
	if req.Date != "2026-09-15" || req.Time != "14:00" {
		t.Fatalf("wrong schedule: %s %s", req.Date, req.Time)
	}
}

func TestAccept_RefusesDecidedBooking(t *testing.T) {
	api := &mockBookingAPI{}
	svc := NewBookingService(api, zap.NewNop())

	for _, status := range []model.BookingStatus{model.BookingStatusAccepted, model.BookingStatusRejected} {
		booking := &model.Booking{ID: "b1", To: "owner-1", Status: status}

		if err := svc.Accept(context.Background(), "owner-1", booking); !errors.Is(err, ErrNotPending) {
			t.Fatalf("status %s: expected ErrNotPending, got %v", status, err)
		}
		if err := svc.Reject(context.Background(), "owner-1", booking); !errors.Is(err, ErrNotPending) {
			t.Fatalf("status %s: expected ErrNotPending, got %v", status, err)
		}
	}
	if api.acceptCalls != 0 || api.rejectCalls != 0 {
		t.Fatalf("expected no backend calls, got accept=%d reject=%d", api.acceptCalls, api.rejectCalls)
	}
}

func TestAccept_PendingBookingCallsBackend(t *testing.T) {
	api := &mockBookingAPI{}
	svc := NewBookingService(api, zap.NewNop())

	booking := &model.Booking{ID: "b1", To: "owner-1", Status: model.BookingStatusPending}

	if err := svc.Accept(context.Background(), "owner-1", booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.acceptCalls != 1 {
		t.Fatalf("expected 1 accept call, got %d", api.acceptCalls)
	}
}

func TestRequestsForOwner_FiltersByTarget(t *testing.T) {
	bookings := []*model.Booking{
		{ID: "b1", From: "tenant-1", To: "owner-1", Status: model.BookingStatusPending},
		{ID: "b2", From: "owner-1", To: "owner-2", Status: model.BookingStatusPending},
		{ID: "b3", From: "tenant-2", To: "owner-1", Status: model.BookingStatusAccepted},
	}

	requests := RequestsForOwner(bookings, "owner-1")
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests for owner-1, got %d", len(requests))
	}
	for _, b := range requests {
		if b.To != "owner-1" {
			t.Fatalf("booking %s is not addressed to owner-1", b.ID)
		}
	}
}
