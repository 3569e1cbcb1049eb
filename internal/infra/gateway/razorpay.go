// Package gateway wraps the Razorpay client: order creation, live status
// lookup and signature verification.
package gateway

import (
	"context"
	"fmt"

	"techfest-backend/internal/pkg/config"
	"techfest-backend/internal/pkg/errs"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// GatewayOrder is the provider-side view of an order. Amounts are in paise.
type GatewayOrder struct {
	ID         string
	Amount     int64
	AmountPaid int64
	Currency   string
	Status     string
}

const statusPaid = "paid"

func (o GatewayOrder) IsPaid() bool {
	return o.Status == statusPaid || o.AmountPaid > 0
}

// Client is a thin adapter over the Razorpay SDK. A Client constructed
// without credentials stays usable but every gateway call fails with
// ErrGatewayUnavailable, so the payment subsystem degrades instead of
// crashing at startup.
type Client struct {
	rzp           *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewClient(cfg config.RazorpayConfig) *Client {
	c := &Client{
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
	}
	if cfg.KeyID != "" && cfg.KeySecret != "" {
		c.rzp = razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	}
	return c
}

func (c *Client) IsConfigured() bool {
	return c.rzp != nil
}

// KeyID is exposed to the frontend so it can open the checkout widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder registers an order with the gateway and returns the issued id.
// amountRupees is converted to paise here; the registered amount always
// equals the server-computed amount.
func (c *Client) CreateOrder(_ context.Context, amountRupees int, currency, receipt string, notes map[string]string) (string, error) {
	if c.rzp == nil {
		return "", errs.ErrGatewayUnavailable
	}

	data := map[string]any{
		"amount":   int64(amountRupees) * 100,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteMap := make(map[string]any, len(notes))
		for k, v := range notes {
			noteMap[k] = v
		}
		data["notes"] = noteMap
	}

	body, err := c.rzp.Order.Create(data, nil)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "gateway declined order"), errs.ErrGatewayRejected)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", errs.Mark(errs.New("gateway response missing order id"), errs.ErrGatewayRejected)
	}
	return id, nil
}

// FetchOrder retrieves the live order state, used by the status-lookup
// verification path.
func (c *Client) FetchOrder(_ context.Context, orderID string) (*GatewayOrder, error) {
	if c.rzp == nil {
		return nil, errs.ErrGatewayUnavailable
	}

	body, err := c.rzp.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch gateway order")
	}

	out := &GatewayOrder{ID: orderID}
	if v, ok := body["status"].(string); ok {
		out.Status = v
	}
	if v, ok := body["currency"].(string); ok {
		out.Currency = v
	}
	out.Amount = numberField(body, "amount")
	out.AmountPaid = numberField(body, "amount_paid")
	return out, nil
}

// VerifyPaymentSignature checks the checkout callback proof against
// orderID|paymentID using the key secret.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID+"|"+paymentID, signature, c.keySecret)
}

// VerifyWebhookSignature checks the provider signature header over the raw
// webhook body.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	if c.webhookSecret == "" || signature == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, c.webhookSecret)
}

func numberField(body map[string]any, key string) int64 {
	switch v := body[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		var n int64
		fmt.Sscan(v, &n)
		return n
	default:
		return 0
	}
}
