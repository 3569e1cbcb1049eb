package commands

import (
	"context"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
)

type SubmitResult struct {
	Registration    *registration.Registration // set when the submission was free
	RequiresPayment bool
	Amount          int
	Currency        string
}

type DuplicateCheckResult struct {
	Exists          bool
	DuplicateFields []string
}

type RegistrationCommands interface {
	Submit(ctx context.Context, caller usecase.Caller, req registration.Request) (*SubmitResult, error)
	CheckDuplicate(ctx context.Context, email, whatsapp string) (*DuplicateCheckResult, error)
}

type registrationCommandsImpl struct {
	registrations RegistrationRepository
	ledger        *Ledger
	catalog       *catalog.Catalog
}

func NewRegistrationCommands(registrations RegistrationRepository, ledger *Ledger, cat *catalog.Catalog) RegistrationCommands {
	return &registrationCommandsImpl{
		registrations: registrations,
		ledger:        ledger,
		catalog:       cat,
	}
}

// Submit handles the direct submission path. Free selections are committed
// immediately; anything priced is answered with a payment-required response
// and committed later through the payment flow.
func (r *registrationCommandsImpl) Submit(ctx context.Context, caller usecase.Caller, req registration.Request) (*SubmitResult, error) {
	if err := req.Validate(caller.Email); err != nil {
		if err == registration.ErrEmailMismatch {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	quote := r.catalog.Price(req.Selections(), catalog.IsDiscountEligible(caller.Email))
	if !quote.IsFree() {
		return &SubmitResult{
			RequiresPayment: true,
			Amount:          quote.Total,
			Currency:        "INR",
		}, nil
	}

	reg, err := r.ledger.CommitFree(ctx, caller.UID, caller.Email, req)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Registration: reg}, nil
}

func (r *registrationCommandsImpl) CheckDuplicate(ctx context.Context, email, whatsapp string) (*DuplicateCheckResult, error) {
	if email == "" || whatsapp == "" {
		return nil, errs.ErrInvalidInput
	}

	req := registration.Request{Email: email, WhatsApp: whatsapp}
	fields, err := r.registrations.DuplicateFields(ctx, req.NormalizedEmail(), req.NormalizedWhatsApp())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &DuplicateCheckResult{
		Exists:          len(fields) > 0,
		DuplicateFields: fields,
	}, nil
}
