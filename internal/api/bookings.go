package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

type bookingsResponse struct {
	Bookings []*model.Booking `json:"bookings"`
}

// ListBookings fetches all bookings where userID is the requester or the
// target owner; the backend decides which side each record belongs to.
func (c *Client) ListBookings(ctx context.Context, userID string) ([]*model.Booking, error) {
	var resp bookingsResponse
	path := fmt.Sprintf("/bookings/%s", userID)
	if err := c.do(ctx, "list bookings", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// CreateBooking submits a booking request to the property owner.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) error {
	path := fmt.Sprintf("/bookings/%s", req.To)
	return c.do(ctx, "create booking", http.MethodPost, path, req, nil)
}

// AcceptBooking records the owner's accept decision. One-way: the backend
// refuses transitions out of a terminal status.
func (c *Client) AcceptBooking(ctx context.Context, ownerID, bookingID string) error {
	path := fmt.Sprintf("/bookings/%s/%s/accept", ownerID, bookingID)
	return c.do(ctx, "accept booking", http.MethodPost, path, nil, nil)
}

// RejectBooking records the owner's reject decision.
func (c *Client) RejectBooking(ctx context.Context, ownerID, bookingID string) error {
	path := fmt.Sprintf("/bookings/%s/%s/reject", ownerID, bookingID)
	return c.do(ctx, "reject booking", http.MethodPost, path, nil, nil)
}
