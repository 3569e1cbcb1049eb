// Package registration defines the registration request submitted by a
// caller and the durable confirmed registration record.
package registration

import (
	"errors"
	"strings"
	"time"

	"techfest-backend/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingWhatsApp = errors.New("whatsapp number is required")
	ErrEmailMismatch   = errors.New("registrant email must match authenticated email")
	ErrEmptySelection  = errors.New("at least one event, workshop or pass must be selected")
)

// Request is the caller-submitted selection set plus registrant profile.
// It is validated against the authenticated identity, then either embedded
// into a payment order or committed directly on the free path.
type Request struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	WhatsApp              string `json:"whatsapp"`
	College               string `json:"college"`
	Year                  string `json:"year"`
	SelectedPass          *int   `json:"selectedPass,omitempty"`
	SelectedEvents        []int  `json:"selectedEvents,omitempty"`
	SelectedWorkshops     []int  `json:"selectedWorkshops,omitempty"`
	SelectedNonTechEvents []int  `json:"selectedNonTechEvents,omitempty"`
}

// Validate checks required fields and that the registrant email matches the
// authenticated caller's email (case-insensitive).
func (r Request) Validate(authEmail string) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(r.WhatsApp) == "" {
		return ErrMissingWhatsApp
	}
	if !strings.EqualFold(strings.TrimSpace(r.Email), strings.TrimSpace(authEmail)) {
		return ErrEmailMismatch
	}
	if r.SelectedPass == nil &&
		len(r.SelectedEvents) == 0 &&
		len(r.SelectedWorkshops) == 0 &&
		len(r.SelectedNonTechEvents) == 0 {
		return ErrEmptySelection
	}
	return nil
}

func (r Request) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r Request) NormalizedWhatsApp() string {
	return strings.TrimSpace(r.WhatsApp)
}

func (r Request) EventCount() int {
	return len(r.SelectedEvents) + len(r.SelectedWorkshops) + len(r.SelectedNonTechEvents)
}

func (r Request) Selections() catalog.Selections {
	return catalog.Selections{
		PassID:          r.SelectedPass,
		TechEventIDs:    r.SelectedEvents,
		WorkshopIDs:     r.SelectedWorkshops,
		NonTechEventIDs: r.SelectedNonTechEvents,
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not-required"
	PaymentPending     PaymentStatus = "pending"
	PaymentVerified    PaymentStatus = "verified"
)

// VerificationMethod records how a payment was proven authentic.
type VerificationMethod string

const (
	VerifiedBySignature    VerificationMethod = "signature"
	VerifiedByStatusLookup VerificationMethod = "status-lookup"
	VerifiedByWebhook      VerificationMethod = "webhook"
	VerifiedNone           VerificationMethod = "none"
)

// PaymentDetails is the payment summary embedded in a confirmed registration.
type PaymentDetails struct {
	OrderID   string             `json:"orderId"`
	PaymentID string             `json:"paymentId"`
	Signature string             `json:"signature,omitempty"`
	Amount    int                `json:"amount"`
	Currency  string             `json:"currency"`
	Status    string             `json:"status"`
	Method    VerificationMethod `json:"method"`
	PaidAt    time.Time          `json:"paidAt"`
}

// Registration is the durable confirmed record. ID is the storage key;
// RegistrationID is the human-readable TF2025-XXXXXXXX identifier shown to
// the registrant.
type Registration struct {
	ID             uuid.UUID
	RegistrationID string
	UserID         string
	UserEmail      string
	Request        Request
	Payment        *PaymentDetails
	Status         Status
	PaymentStatus  PaymentStatus
	EventCount     int

	// Operational fields mutated by the admin endpoints.
	CheckedIn         bool
	CheckedInAt       *time.Time
	AttendedEvents    []int
	AttendedWorkshops []int
	Notes             string
	Flagged           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPaid builds a confirmed registration from a completed payment.
func NewPaid(registrationID, userID, userEmail string, req Request, payment PaymentDetails, now time.Time) *Registration {
	return &Registration{
		ID:             uuid.New(),
		RegistrationID: registrationID,
		UserID:         userID,
		UserEmail:      userEmail,
		Request:        req,
		Payment:        &payment,
		Status:         StatusConfirmed,
		PaymentStatus:  PaymentVerified,
		EventCount:     req.EventCount(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewFree builds a confirmed registration for a zero-amount submission; no
// payment details are attached.
func NewFree(registrationID, userID, userEmail string, req Request, now time.Time) *Registration {
	return &Registration{
		ID:             uuid.New(),
		RegistrationID: registrationID,
		UserID:         userID,
		UserEmail:      userEmail,
		Request:        req,
		Status:         StatusConfirmed,
		PaymentStatus:  PaymentNotRequired,
		EventCount:     req.EventCount(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
