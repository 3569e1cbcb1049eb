//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra"
	"techfest-backend/internal/infra/gateway"
)

type fakeOrderRepo struct {
	orders      map[string]*order.Order
	completeErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, orderID string) (*order.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Complete(_ context.Context, orderID, paymentID, registrationID string, completedAt time.Time) (bool, error) {
	if f.completeErr != nil {
		return false, f.completeErr
	}
	o, ok := f.orders[orderID]
	if !ok {
		return false, nil
	}
	if o.RegistrationID != "" || o.Status == order.StatusCompleted {
		return false, nil
	}
	o.Status = order.StatusCompleted
	o.PaymentID = paymentID
	o.RegistrationID = registrationID
	o.CompletedAt = &completedAt
	return true, nil
}

func (f *fakeOrderRepo) MarkFailed(_ context.Context, orderID string) error {
	if o, ok := f.orders[orderID]; ok {
		o.Status = order.StatusFailed
	}
	return nil
}

type fakeRegistrationRepo struct {
	regs      []*registration.Registration
	insertErr error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{}
}

func (f *fakeRegistrationRepo) Insert(_ context.Context, reg *registration.Registration) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cp := *reg
	f.regs = append(f.regs, &cp)
	return nil
}

func (f *fakeRegistrationRepo) FindByRegistrationID(_ context.Context, registrationID string) (*registration.Registration, error) {
	for _, r := range f.regs {
		if r.RegistrationID == registrationID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("registration not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeRegistrationRepo) DuplicateFields(_ context.Context, email, whatsapp string) ([]string, error) {
	fields := make(map[string]struct{})
	for _, r := range f.regs {
		if r.Request.NormalizedEmail() == email {
			fields["email"] = struct{}{}
		}
		if r.Request.NormalizedWhatsApp() == whatsapp {
			fields["whatsapp"] = struct{}{}
		}
	}
	var out []string
	for k := range fields {
		out = append(out, k)
	}
	return out, nil
}

func (f *fakeRegistrationRepo) SetCheckedIn(_ context.Context, registrationID string, at time.Time) error {
	for _, r := range f.regs {
		if r.RegistrationID == registrationID {
			r.CheckedIn = true
			r.CheckedInAt = &at
			r.UpdatedAt = at
			return nil
		}
	}
	return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
}

func (f *fakeRegistrationRepo) SetAttendance(_ context.Context, registrationID string, events, workshops []int, at time.Time) error {
	for _, r := range f.regs {
		if r.RegistrationID == registrationID {
			r.AttendedEvents = events
			r.AttendedWorkshops = workshops
			r.UpdatedAt = at
			return nil
		}
	}
	return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
}

func (f *fakeRegistrationRepo) UpdateSnapshot(_ context.Context, registrationID string, req registration.Request, at time.Time) error {
	for _, r := range f.regs {
		if r.RegistrationID == registrationID {
			r.Request = req
			r.UpdatedAt = at
			return nil
		}
	}
	return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
}

func (f *fakeRegistrationRepo) UpdateNotes(_ context.Context, registrationID, notes string, flagged bool, at time.Time) error {
	for _, r := range f.regs {
		if r.RegistrationID == registrationID {
			r.Notes = notes
			r.Flagged = flagged
			r.UpdatedAt = at
			return nil
		}
	}
	return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
}

type fakeGateway struct {
	configured   bool
	keyID        string
	nextOrderID  string
	createErr    error
	lastAmount   int
	lastNotes    map[string]string
	fetchOrder   *gateway.GatewayOrder
	fetchErr     error
	validSig     string
	webhookValid bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		configured:   true,
		keyID:        "rzp_test_key",
		nextOrderID:  "order_fake123",
		webhookValid: true,
	}
}

func (f *fakeGateway) IsConfigured() bool { return f.configured }
func (f *fakeGateway) KeyID() string      { return f.keyID }

func (f *fakeGateway) CreateOrder(_ context.Context, amountRupees int, _ string, _ string, notes map[string]string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.lastAmount = amountRupees
	f.lastNotes = notes
	return f.nextOrderID, nil
}

func (f *fakeGateway) FetchOrder(_ context.Context, _ string) (*gateway.GatewayOrder, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchOrder, nil
}

func (f *fakeGateway) VerifyPaymentSignature(_, _, signature string) bool {
	return f.validSig != "" && signature == f.validSig
}

func (f *fakeGateway) VerifyWebhookSignature(_ []byte, _ string) bool {
	return f.webhookValid
}

type fakeNotifier struct {
	notified []string
	err      error
}

func (f *fakeNotifier) Notify(_ context.Context, reg *registration.Registration) error {
	f.notified = append(f.notified, reg.RegistrationID)
	return f.err
}
