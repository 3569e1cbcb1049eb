package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers translate these
// into stable HTTP codes; nothing below the handler layer knows about HTTP.
var (
	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Catalog errors
	ErrEventNotFound    = errors.New("event not found")
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrPassNotFound     = errors.New("pass not found")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrGatewayRejected    = errors.New("payment gateway rejected order")

	// Verification errors
	ErrVerificationFailed = errors.New("payment verification failed")

	// Registration errors
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("duplicate registration")
	ErrInvalidInput          = errors.New("invalid input")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
