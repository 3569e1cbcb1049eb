// Package order models a payment-gateway-tracked charge attempt linked to a
// registration in progress.
package order

import (
	"errors"
	"time"

	"techfest-backend/internal/domain/registration"
)

var (
	ErrInvalidAmount     = errors.New("order amount must be positive")
	ErrAlreadyCompleted  = errors.New("order already completed")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// Order is keyed by the gateway-issued identifier. AmountRupees is the
// server-computed amount; it is never taken from the client. Status moves
// monotonically created -> completed|failed, and RegistrationID is written at
// most once, when the order completes.
type Order struct {
	ID             string
	AmountRupees   int
	Currency       string
	Status         Status
	UserID         string
	UserEmail      string
	Snapshot       registration.Request
	Notes          map[string]string
	PaymentID      string
	RegistrationID string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

func New(gatewayID string, amountRupees int, currency, userID, userEmail string, snapshot registration.Request, notes map[string]string, now time.Time) (*Order, error) {
	if amountRupees <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Order{
		ID:           gatewayID,
		AmountRupees: amountRupees,
		Currency:     currency,
		Status:       StatusCreated,
		UserID:       userID,
		UserEmail:    userEmail,
		Snapshot:     snapshot,
		Notes:        notes,
		CreatedAt:    now,
	}, nil
}

// IsCompleted reports whether the order already carries a registration
// back-link; completed orders are idempotent under repeated verification.
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

func (o *Order) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}

// Complete transitions the order to completed and records the payment id and
// registration back-link. Completing twice is an error; callers treat an
// already-completed order as a replay and return the linked registration.
func (o *Order) Complete(paymentID, registrationID string, now time.Time) error {
	switch o.Status {
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusFailed:
		return ErrInvalidTransition
	}
	o.Status = StatusCompleted
	o.PaymentID = paymentID
	o.RegistrationID = registrationID
	o.CompletedAt = &now
	return nil
}

// Fail marks the order failed. Failing a completed order is rejected.
func (o *Order) Fail() error {
	if o.Status == StatusCompleted {
		return ErrInvalidTransition
	}
	o.Status = StatusFailed
	return nil
}
