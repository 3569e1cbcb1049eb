package queries

import (
	"context"
	"strings"

	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
)

type RegistrationReadStore interface {
	FindByUserEmail(ctx context.Context, userEmail string) ([]*registration.Registration, error)
	ListAll(ctx context.Context) ([]*registration.Registration, error)
}

type RegistrationQueries interface {
	MyRegistrations(ctx context.Context, caller usecase.Caller) ([]*registration.Registration, error)
	ListAll(ctx context.Context) ([]*registration.Registration, error)
}

type registrationQueriesImpl struct {
	registrations RegistrationReadStore
}

func NewRegistrationQueries(registrations RegistrationReadStore) RegistrationQueries {
	return &registrationQueriesImpl{registrations: registrations}
}

func (q *registrationQueriesImpl) MyRegistrations(ctx context.Context, caller usecase.Caller) ([]*registration.Registration, error) {
	regs, err := q.registrations.FindByUserEmail(ctx, strings.ToLower(strings.TrimSpace(caller.Email)))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return regs, nil
}

func (q *registrationQueriesImpl) ListAll(ctx context.Context) ([]*registration.Registration, error) {
	regs, err := q.registrations.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return regs, nil
}
