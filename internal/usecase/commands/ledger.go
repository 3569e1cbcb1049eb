package commands

import (
	"context"
	"log/slog"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/clock"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/pkg/regid"
)

// Ledger owns registration commits. Exactly one registration per completed
// order: the order's registration back-link is the idempotency key for the
// paid path; the duplicate-registrant check guards the free path, which has
// no order to key on.
type Ledger struct {
	orders        OrderRepository
	registrations RegistrationRepository
	notifier      Notifier
	clock         clock.Clock
}

func NewLedger(orders OrderRepository, registrations RegistrationRepository, notifier Notifier, clock clock.Clock) *Ledger {
	return &Ledger{
		orders:        orders,
		registrations: registrations,
		notifier:      notifier,
		clock:         clock,
	}
}

// CommitPaid turns a verified payment into a durable registration. If the
// order already carries a registration back-link the linked registration is
// returned unchanged, which makes client retries and duplicate webhook
// deliveries no-ops.
func (l *Ledger) CommitPaid(ctx context.Context, ord *order.Order, paymentID, signature string, method registration.VerificationMethod) (*registration.Registration, bool, error) {
	if ord.RegistrationID != "" {
		existing, err := l.registrations.FindByRegistrationID(ctx, ord.RegistrationID)
		if err != nil {
			return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return existing, true, nil
	}

	now := l.clock.Now()
	reg := registration.NewPaid(
		regid.New(),
		ord.UserID,
		ord.UserEmail,
		ord.Snapshot,
		registration.PaymentDetails{
			OrderID:   ord.ID,
			PaymentID: paymentID,
			Signature: signature,
			Amount:    ord.AmountRupees,
			Currency:  ord.Currency,
			Status:    "paid",
			Method:    method,
			PaidAt:    now,
		},
		now,
	)

	if err := l.registrations.Insert(ctx, reg); err != nil {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	linked, err := l.orders.Complete(ctx, ord.ID, paymentID, reg.RegistrationID, now)
	if err != nil {
		// A registration without a back-link is acceptable; the reverse is
		// not, so the order update is the write allowed to fail.
		slog.WarnContext(ctx, "failed to link registration to order",
			"order_id", ord.ID, "registration_id", reg.RegistrationID, "error", err)
		l.notify(ctx, reg)
		return reg, false, nil
	}
	if !linked {
		// Lost the race against a concurrent commit; return the winner's
		// registration and leave ours unlinked.
		winner, findErr := l.orders.FindByID(ctx, ord.ID)
		if findErr == nil && winner.RegistrationID != "" && winner.RegistrationID != reg.RegistrationID {
			slog.WarnContext(ctx, "concurrent commit won order link",
				"order_id", ord.ID, "registration_id", winner.RegistrationID)
			existing, findRegErr := l.registrations.FindByRegistrationID(ctx, winner.RegistrationID)
			if findRegErr == nil {
				return existing, true, nil
			}
		}
	}

	l.notify(ctx, reg)
	return reg, false, nil
}

// CommitFree persists a zero-amount registration directly from the request.
// There is no order to key idempotency on, so the duplicate-registrant check
// runs first.
func (l *Ledger) CommitFree(ctx context.Context, userID, userEmail string, req registration.Request) (*registration.Registration, error) {
	fields, err := l.registrations.DuplicateFields(ctx, req.NormalizedEmail(), req.NormalizedWhatsApp())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(fields) > 0 {
		return nil, errs.ErrDuplicateRegistration
	}

	reg := registration.NewFree(regid.New(), userID, userEmail, req, l.clock.Now())
	if err := l.registrations.Insert(ctx, reg); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	l.notify(ctx, reg)
	return reg, nil
}

func (l *Ledger) notify(ctx context.Context, reg *registration.Registration) {
	if l.notifier == nil {
		return
	}
	if err := l.notifier.Notify(ctx, reg); err != nil {
		slog.WarnContext(ctx, "confirmation email failed",
			"registration_id", reg.RegistrationID, "error", err)
	}
}
