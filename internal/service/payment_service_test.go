package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type mockPaymentAPI struct {
	order *model.PaymentOrder

	createCalls   int
	verifyCalls   int
	lastBookingID string
	lastOrderID   string
	lastPaymentID string
	lastSignature string
	err           error
}

func (m *mockPaymentAPI) CreateOrder(ctx context.Context, bookingID string) (*model.PaymentOrder, error) {
	m.createCalls++
	m.lastBookingID = bookingID
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func (m *mockPaymentAPI) VerifyPayment(ctx context.Context, bookingID, orderID, paymentID, signature string) error {
	m.verifyCalls++
	m.lastBookingID = bookingID
	m.lastOrderID = orderID
	m.lastPaymentID = paymentID
	m.lastSignature = signature
	return m.err
}

func TestStart_EligibilityGating(t *testing.T) {
	cases := []struct {
		name     string
		booking  *model.Booking
		eligible bool
	}{
		{"pending booking", &model.Booking{ID: "b1", Status: model.BookingStatusPending}, false},
		{"rejected booking", &model.Booking{ID: "b2", Status: model.BookingStatusRejected}, false},
		{"accepted unpaid", &model.Booking{ID: "b3", Status: model.BookingStatusAccepted}, true},
		{"accepted failed payment", &model.Booking{ID: "b4", Status: model.BookingStatusAccepted, PaymentStatus: model.PaymentStatusFailed}, true},
		{"accepted already paid", &model.Booking{ID: "b5", Status: model.BookingStatusAccepted, PaymentStatus: model.PaymentStatusSuccess}, false},
	}

	for _, tc := range cases {
		api := &mockPaymentAPI{order: &model.PaymentOrder{OrderID: "ord-1", Amount: 850000, Currency: "INR", Key: "key"}}
		svc := NewPaymentService(api, zap.NewNop())

		order, err := svc.Start(context.Background(), tc.booking)

		if tc.eligible {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if order == nil || order.OrderID != "ord-1" {
				t.Fatalf("%s: expected order ord-1, got %v", tc.name, order)
			}
			if api.createCalls != 1 {
				t.Fatalf("%s: expected 1 create call, got %d", tc.name, api.createCalls)
			}
		} else {
			if !errors.Is(err, ErrNotEligible) {
				t.Fatalf("%s: expected ErrNotEligible, got %v", tc.name, err)
			}
			if api.createCalls != 0 {
				t.Fatalf("%s: expected no create call, got %d", tc.name, api.createCalls)
			}
		}
	}
}

func TestComplete_SubmitsSignedVerification(t *testing.T) {
	api := &mockPaymentAPI{}
	svc := NewPaymentService(api, zap.NewNop())

	order := &model.PaymentOrder{OrderID: "ord-1", Key: "secret-key", Amount: 850000, Currency: "INR"}

	if err := svc.Complete(context.Background(), "b1", order, "pay-77"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.verifyCalls != 1 {
		t.Fatalf("expected 1 verify call, got %d", api.verifyCalls)
	}
	if api.lastBookingID != "b1" || api.lastOrderID != "ord-1" || api.lastPaymentID != "pay-77" {
		t.Fatalf("wrong verification payload: %s %s %s", api.lastBookingID, api.lastOrderID, api.lastPaymentID)
	}
	if api.lastSignature != Sign("ord-1", "pay-77", "secret-key") {
		t.Fatal("signature does not match Sign(orderID, paymentID, key)")
	}
}

func TestComplete_PropagatesVerificationFailure(t *testing.T) {
	api := &mockPaymentAPI{err: errors.New("signature mismatch")}
	svc := NewPaymentService(api, zap.NewNop())

	order := &model.PaymentOrder{OrderID: "ord-1", Key: "secret-key"}

	if err := svc.Complete(context.Background(), "b1", order, "pay-77"); err == nil {
		t.Fatal("expected error from failed verification")
	}
}

func TestSign_DeterministicAndKeyDependent(t *testing.T) {
	a := Sign("ord-1", "pay-1", "key-a")
	b := Sign("ord-1", "pay-1", "key-a")
	if a != b {
		t.Fatal("same inputs must produce the same signature")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars for SHA-256, got %d", len(a))
	}

	if Sign("ord-1", "pay-1", "key-b") == a {
		t.Fatal("different keys must produce different signatures")
	}
	if Sign("ord-1", "pay-2", "key-a") == a {
		t.Fatal("different payment ids must produce different signatures")
	}
}
