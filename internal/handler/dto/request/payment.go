package request

import "encoding/json"

// CreateOrderRequest carries the selection snapshot the order amount is
// computed from. Any client-supplied amount is ignored; pricing is
// server-side only.
type CreateOrderRequest struct {
	// Amount is accepted for frontend compatibility but never trusted.
	Amount           int               `json:"amount"`
	Currency         string            `json:"currency"`
	Notes            map[string]string `json:"notes"`
	RegistrationData RegistrationData  `json:"registrationData" binding:"required"`
}

// VerifyPaymentRequest carries the checkout handler result. The signature
// field also accepts the polling sentinel when checkout closed without one.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	// RegistrationData is accepted for frontend compatibility but ignored;
	// the authoritative snapshot is the one stored with the order.
	RegistrationData json.RawMessage `json:"registrationData"`
}
