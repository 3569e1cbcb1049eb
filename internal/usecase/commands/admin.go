package commands

import (
	"context"
	"log/slog"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra"
	"techfest-backend/internal/pkg/clock"
	"techfest-backend/internal/pkg/errs"
)

// AdminCommands covers the on-site operational endpoints: arrival check-in,
// attendance marking, workshop reassignment and notes. Any authenticated
// caller may invoke these; there is no separate admin role.
type AdminCommands interface {
	CheckIn(ctx context.Context, registrationID string) (*registration.Registration, error)
	MarkAttendance(ctx context.Context, registrationID string, events, workshops []int) (*registration.Registration, error)
	ReassignWorkshop(ctx context.Context, registrationID string, fromWorkshopID, toWorkshopID int) (*registration.Registration, error)
	UpdateNotes(ctx context.Context, registrationID, notes string, flagged bool) (*registration.Registration, error)
}

type adminCommandsImpl struct {
	registrations AdminRepository
	catalog       *catalog.Catalog
	clock         clock.Clock
}

func NewAdminCommands(registrations AdminRepository, cat *catalog.Catalog, clock clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		registrations: registrations,
		catalog:       cat,
		clock:         clock,
	}
}

func (a *adminCommandsImpl) CheckIn(ctx context.Context, registrationID string) (*registration.Registration, error) {
	if err := a.registrations.SetCheckedIn(ctx, registrationID, a.clock.Now()); err != nil {
		return nil, mapAdminErr(err)
	}
	slog.InfoContext(ctx, "registrant checked in", "registration_id", registrationID)
	return a.reload(ctx, registrationID)
}

func (a *adminCommandsImpl) MarkAttendance(ctx context.Context, registrationID string, events, workshops []int) (*registration.Registration, error) {
	if err := a.registrations.SetAttendance(ctx, registrationID, events, workshops, a.clock.Now()); err != nil {
		return nil, mapAdminErr(err)
	}
	return a.reload(ctx, registrationID)
}

// ReassignWorkshop swaps one workshop selection for another in the stored
// snapshot. The target workshop must exist in the catalog and the source must
// be present in the registration.
func (a *adminCommandsImpl) ReassignWorkshop(ctx context.Context, registrationID string, fromWorkshopID, toWorkshopID int) (*registration.Registration, error) {
	if _, ok := a.catalog.WorkshopByID(toWorkshopID); !ok {
		return nil, errs.ErrWorkshopNotFound
	}

	reg, err := a.registrations.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, mapAdminErr(err)
	}

	found := false
	updated := make([]int, 0, len(reg.Request.SelectedWorkshops))
	for _, id := range reg.Request.SelectedWorkshops {
		if id == fromWorkshopID && !found {
			updated = append(updated, toWorkshopID)
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		return nil, errs.Mark(errs.New("workshop not in registration"), errs.ErrInvalidInput)
	}

	reg.Request.SelectedWorkshops = updated
	if err := a.registrations.UpdateSnapshot(ctx, registrationID, reg.Request, a.clock.Now()); err != nil {
		return nil, mapAdminErr(err)
	}
	return a.reload(ctx, registrationID)
}

func (a *adminCommandsImpl) UpdateNotes(ctx context.Context, registrationID, notes string, flagged bool) (*registration.Registration, error) {
	if err := a.registrations.UpdateNotes(ctx, registrationID, notes, flagged, a.clock.Now()); err != nil {
		return nil, mapAdminErr(err)
	}
	return a.reload(ctx, registrationID)
}

func (a *adminCommandsImpl) reload(ctx context.Context, registrationID string) (*registration.Registration, error) {
	reg, err := a.registrations.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, mapAdminErr(err)
	}
	return reg, nil
}

func mapAdminErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrRegistrationNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
