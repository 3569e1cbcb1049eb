package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra"
	"techfest-backend/internal/pkg/clock"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
)

// PollingSentinel is the proof value a client sends when it detected payment
// completion by polling instead of receiving the checkout signature. It
// switches verification to a live gateway status lookup.
const PollingSentinel = "payment_detected_by_polling"

type CreateOrderResult struct {
	FreeRegistration bool
	Registration     *registration.Registration // set on the free path only
	OrderID          string
	Amount           int
	Currency         string
	GatewayKey       string
	Quote            catalog.Quote
}

type VerifyPaymentResult struct {
	Registration *registration.Registration
	Replayed     bool
}

type PaymentCommands interface {
	CreateOrder(ctx context.Context, caller usecase.Caller, req registration.Request, currency string, notes map[string]string) (*CreateOrderResult, error)
	VerifyPayment(ctx context.Context, caller usecase.Caller, orderID, paymentID, signature string) (*VerifyPaymentResult, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type paymentCommandsImpl struct {
	orders  OrderRepository
	gateway PaymentGateway
	ledger  *Ledger
	catalog *catalog.Catalog
	clock   clock.Clock
}

func NewPaymentCommands(
	orders OrderRepository,
	gw PaymentGateway,
	ledger *Ledger,
	cat *catalog.Catalog,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		orders:  orders,
		gateway: gw,
		ledger:  ledger,
		catalog: cat,
		clock:   clock,
	}
}

// CreateOrder computes the amount server-side from the selection snapshot and
// registers an order with the gateway for exactly that amount. A computed
// amount of zero skips the gateway entirely and commits the registration.
func (p *paymentCommandsImpl) CreateOrder(
	ctx context.Context,
	caller usecase.Caller,
	req registration.Request,
	currency string,
	notes map[string]string,
) (*CreateOrderResult, error) {
	if err := req.Validate(caller.Email); err != nil {
		if err == registration.ErrEmailMismatch {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	if currency == "" {
		currency = "INR"
	}

	quote := p.catalog.Price(req.Selections(), catalog.IsDiscountEligible(caller.Email))

	if quote.IsFree() {
		reg, err := p.ledger.CommitFree(ctx, caller.UID, caller.Email, req)
		if err != nil {
			return nil, err
		}
		return &CreateOrderResult{
			FreeRegistration: true,
			Registration:     reg,
			Amount:           0,
			Currency:         currency,
			Quote:            quote,
		}, nil
	}

	if !p.gateway.IsConfigured() {
		return nil, errs.ErrGatewayUnavailable
	}

	now := p.clock.Now()
	receipt := fmt.Sprintf("TF2025_%d", now.UnixMilli())
	orderNotes := map[string]string{
		"userEmail": caller.Email,
		"userId":    caller.UID,
	}
	for k, v := range notes {
		orderNotes[k] = v
	}

	gatewayID, err := p.gateway.CreateOrder(ctx, quote.Total, currency, receipt, orderNotes)
	if err != nil {
		return nil, err
	}

	ord, err := order.New(gatewayID, quote.Total, currency, caller.UID, caller.Email, req, orderNotes, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	if err := p.orders.Create(ctx, ord); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateOrderResult{
		OrderID:    ord.ID,
		Amount:     ord.AmountRupees,
		Currency:   ord.Currency,
		GatewayKey: p.gateway.KeyID(),
		Quote:      quote,
	}, nil
}

// VerifyPayment confirms a claimed payment and commits the registration.
// The proof is either the checkout HMAC signature or the polling sentinel,
// which triggers a live status lookup instead.
func (p *paymentCommandsImpl) VerifyPayment(
	ctx context.Context,
	caller usecase.Caller,
	orderID, paymentID, signature string,
) (*VerifyPaymentResult, error) {
	ord, err := p.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Ownership is checked before any proof inspection.
	if !ord.IsOwnedBy(caller.UID) {
		return nil, errs.ErrForbidden
	}

	method := registration.VerifiedBySignature
	if signature == PollingSentinel {
		method = registration.VerifiedByStatusLookup
		gatewayOrder, err := p.gateway.FetchOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if !gatewayOrder.IsPaid() {
			return nil, errs.ErrVerificationFailed
		}
		signature = ""
	} else if !p.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		return nil, errs.ErrVerificationFailed
	}

	reg, replayed, err := p.ledger.CommitPaid(ctx, ord, paymentID, signature, method)
	if err != nil {
		return nil, err
	}
	return &VerifyPaymentResult{Registration: reg, Replayed: replayed}, nil
}

// webhookEvent is the subset of the provider's webhook payload we act on.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook processes a provider notification. Only payment.captured is
// acted on; every other event type is acknowledged and ignored. Replayed
// deliveries for an already-linked order are no-ops via the ledger.
func (p *paymentCommandsImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !p.gateway.VerifyWebhookSignature(body, signature) {
		return errs.ErrVerificationFailed
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}

	if event.Event != "payment.captured" {
		slog.InfoContext(ctx, "ignoring webhook event", "event", event.Event)
		return nil
	}

	orderID := event.Payload.Payment.Entity.OrderID
	paymentID := event.Payload.Payment.Entity.ID
	if orderID == "" {
		slog.WarnContext(ctx, "payment.captured webhook missing order id")
		return nil
	}

	ord, err := p.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "webhook for unknown order", "order_id", orderID)
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	reg, replayed, err := p.ledger.CommitPaid(ctx, ord, paymentID, "", registration.VerifiedByWebhook)
	if err != nil {
		return err
	}
	if replayed {
		slog.InfoContext(ctx, "webhook replay for completed order",
			"order_id", orderID, "registration_id", reg.RegistrationID)
	}
	return nil
}
