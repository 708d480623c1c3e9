package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

// ErrNotEligible means payment was requested for a booking that is not
// accepted or is already paid.
var ErrNotEligible = errors.New("booking is not eligible for payment")

type paymentAPI interface {
	CreateOrder(ctx context.Context, bookingID string) (*model.PaymentOrder, error)
	VerifyPayment(ctx context.Context, bookingID, orderID, paymentID, signature string) error
}

// PaymentService sequences the two-phase checkout: create an order, hand
// the user to the checkout step, then submit the completion for backend
// verification. Verification itself is entirely the backend's job.
type PaymentService struct {
	api    paymentAPI
	logger *zap.Logger
}

func NewPaymentService(api paymentAPI, logger *zap.Logger) *PaymentService {
	return &PaymentService{api: api, logger: logger}
}

// Start opens a checkout intent for an accepted, unpaid booking.
func (s *PaymentService) Start(ctx context.Context, booking *model.Booking) (*model.PaymentOrder, error) {
	if !booking.PaymentEligible() {
		return nil, ErrNotEligible
	}

	order, err := s.api.CreateOrder(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("start payment: %w", err)
	}

	s.logger.Info("Payment order created",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", order.OrderID),
		zap.Int64("amount", order.Amount),
		zap.String("currency", order.Currency),
	)

	return order, nil
}

// Complete submits the checkout completion for verification. On failure the
// booking's payment state is left untouched on the backend.
func (s *PaymentService) Complete(ctx context.Context, bookingID string, order *model.PaymentOrder, paymentID string) error {
	signature := Sign(order.OrderID, paymentID, order.Key)

	if err := s.api.VerifyPayment(ctx, bookingID, order.OrderID, paymentID, signature); err != nil {
		s.logger.Error("Payment verification failed",
			zap.String("booking_id", bookingID),
			zap.String("order_id", order.OrderID),
			zap.Error(err),
		)
		return fmt.Errorf("complete payment: %w", err)
	}

	s.logger.Info("Payment verified",
		zap.String("booking_id", bookingID),
		zap.String("order_id", order.OrderID),
		zap.String("payment_id", paymentID),
	)

	return nil
}

// Sign produces the checkout completion signature: hex-encoded HMAC-SHA256
// over "orderID|paymentID" keyed with the checkout key from the order.
func Sign(orderID, paymentID, key string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}
