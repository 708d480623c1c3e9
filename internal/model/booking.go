package model

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Booking is a tenant's request to rent a property, subject to owner
// approval. `from` is the requester, `to` the property owner. The price is
// snapshotted from the property at request time and never re-read.
// PaymentStatus is absent until a payment has been attempted.
type Booking struct {
	ID            string        `json:"_id"`
	From          string        `json:"from"`
	To            string        `json:"to"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Price         int64         `json:"price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
}

// Decidable reports whether accept/reject controls may be shown.
// pending is the only non-terminal status.
func (b *Booking) Decidable() bool {
	return b.Status == BookingStatusPending
}

// PaymentEligible reports whether the tenant may be offered payment:
// the owner accepted and no successful payment has been recorded yet.
func (b *Booking) PaymentEligible() bool {
	return b.Status == BookingStatusAccepted && b.PaymentStatus != PaymentStatusSuccess
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Price int64  `json:"price"`
}
