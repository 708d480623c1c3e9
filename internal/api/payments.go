package api

import (
	"context"
	"net/http"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

type createOrderRequest struct {
	BookingID string `json:"bookingId"`
}

// verifyRequest carries the checkout completion back to the backend.
// Field names follow the gateway's callback format, which the backend
// expects verbatim.
type verifyRequest struct {
	BookingID string `json:"bookingId"`
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// CreateOrder opens a checkout intent for an accepted booking. The returned
// order configures the checkout step (phase one of the two-phase flow).
func (c *Client) CreateOrder(ctx context.Context, bookingID string) (*model.PaymentOrder, error) {
	var order model.PaymentOrder
	err := c.do(ctx, "create payment order", http.MethodPost, "/payments/create-order", createOrderRequest{BookingID: bookingID}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment submits the completion identifiers and signature for
// backend-side verification (phase two). The booking's payment status only
// changes if the backend accepts the signature.
func (c *Client) VerifyPayment(ctx context.Context, bookingID, orderID, paymentID, signature string) error {
	req := verifyRequest{
		BookingID: bookingID,
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
	}
	return c.do(ctx, "verify payment", http.MethodPost, "/payments/verify", req, nil)
}
