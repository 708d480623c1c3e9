package model

// PaymentOrder is the checkout intent returned by the backend.
// Key is the gateway's publishable key, Amount is in the smallest currency
// unit (paise for INR) as the gateway expects.
type PaymentOrder struct {
	Key      string `json:"key"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	OrderID  string `json:"orderId"`
}
