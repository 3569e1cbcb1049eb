package commands

import (
	"context"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra/gateway"
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, orderID string) (*order.Order, error)
	Complete(ctx context.Context, orderID, paymentID, registrationID string, completedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, orderID string) error
}

type RegistrationRepository interface {
	Insert(ctx context.Context, reg *registration.Registration) error
	FindByRegistrationID(ctx context.Context, registrationID string) (*registration.Registration, error)
	DuplicateFields(ctx context.Context, email, whatsapp string) ([]string, error)
}

type AdminRepository interface {
	FindByRegistrationID(ctx context.Context, registrationID string) (*registration.Registration, error)
	SetCheckedIn(ctx context.Context, registrationID string, at time.Time) error
	SetAttendance(ctx context.Context, registrationID string, events, workshops []int, at time.Time) error
	UpdateSnapshot(ctx context.Context, registrationID string, req registration.Request, at time.Time) error
	UpdateNotes(ctx context.Context, registrationID, notes string, flagged bool, at time.Time) error
}

type PaymentGateway interface {
	IsConfigured() bool
	KeyID() string
	CreateOrder(ctx context.Context, amountRupees int, currency, receipt string, notes map[string]string) (string, error)
	FetchOrder(ctx context.Context, orderID string) (*gateway.GatewayOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// Notifier delivers the confirmation email. Best effort: commit outcomes
// never depend on it.
type Notifier interface {
	Notify(ctx context.Context, reg *registration.Registration) error
}
