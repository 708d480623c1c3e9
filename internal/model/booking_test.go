package model

import "testing"

func TestBookingDecidable(t *testing.T) {
	cases := []struct {
		status    BookingStatus
		decidable bool
	}{
		{BookingStatusPending, true},
		{BookingStatusAccepted, false},
		{BookingStatusRejected, false},
	}

	for _, tc := range cases {
		b := &Booking{Status: tc.status}
		if b.Decidable() != tc.decidable {
			t.Errorf("status %s: expected decidable=%v", tc.status, tc.decidable)
		}
	}
}

func TestBookingPaymentEligible(t *testing.T) {
	cases := []struct {
		name     string
		booking  Booking
		eligible bool
	}{
		{"pending", Booking{Status: BookingStatusPending}, false},
		{"rejected", Booking{Status: BookingStatusRejected}, false},
		{"accepted without payment attempt", Booking{Status: BookingStatusAccepted}, true},
		{"accepted with pending payment", Booking{Status: BookingStatusAccepted, PaymentStatus: PaymentStatusPending}, true},
		{"accepted with failed payment", Booking{Status: BookingStatusAccepted, PaymentStatus: PaymentStatusFailed}, true},
		{"accepted and paid", Booking{Status: BookingStatusAccepted, PaymentStatus: PaymentStatusSuccess}, false},
	}

	for _, tc := range cases {
		if tc.booking.PaymentEligible() != tc.eligible {
			t.Errorf("%s: expected eligible=%v", tc.name, tc.eligible)
		}
	}
}
