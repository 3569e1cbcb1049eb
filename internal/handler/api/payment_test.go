//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/handler/api"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// stubPaymentCommands records the last webhook/verify call and returns
// canned results.
type stubPaymentCommands struct {
	webhookErr    error
	webhookBody   []byte
	webhookSig    string
	webhookCalled bool

	verifyResult    *commands.VerifyPaymentResult
	verifyOrderID   string
	verifyPaymentID string
	verifySignature string
	verifyCalled    bool
}

func (s *stubPaymentCommands) CreateOrder(_ context.Context, _ usecase.Caller, _ registration.Request, _ string, _ map[string]string) (*commands.CreateOrderResult, error) {
	return nil, errs.ErrGatewayUnavailable
}

func (s *stubPaymentCommands) VerifyPayment(_ context.Context, _ usecase.Caller, orderID, paymentID, signature string) (*commands.VerifyPaymentResult, error) {
	s.verifyCalled = true
	s.verifyOrderID = orderID
	s.verifyPaymentID = paymentID
	s.verifySignature = signature
	if s.verifyResult == nil {
		return nil, errs.ErrOrderNotFound
	}
	return s.verifyResult, nil
}

func (s *stubPaymentCommands) HandleWebhook(_ context.Context, body []byte, signature string) error {
	s.webhookCalled = true
	s.webhookBody = body
	s.webhookSig = signature
	return s.webhookErr
}

type stubOrderQueries struct{}

func (stubOrderQueries) GetStatus(_ context.Context, _ usecase.Caller, _ string) (*queries.OrderStatusView, error) {
	return nil, errs.ErrOrderNotFound
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubPaymentCommands
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	// Match the strict decoder the server runs with.
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.router = gin.New()
	s.stub = &stubPaymentCommands{}

	h := api.NewPaymentHandler(s.stub, stubOrderQueries{})
	s.router.POST("/api/payment/webhook", h.Webhook)
	s.router.POST("/api/payment/create-order", h.CreateOrder)
	s.router.POST("/api/payment/verify-payment", func(c *gin.Context) {
		c.Set("caller", usecase.Caller{UID: "uid-1", Email: "asha@example.com"})
	}, h.VerifyPayment)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) postWebhook(body []byte, signature string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	s.router.ServeHTTP(w, req)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *PaymentHandlerTestSuite) TestWebhookAcknowledged() {
	body := []byte(`{"event":"payment.captured"}`)
	w, resp := s.postWebhook(body, "sig-value")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", resp["status"])
	s.True(s.stub.webhookCalled)
	s.Equal(body, s.stub.webhookBody)
	s.Equal("sig-value", s.stub.webhookSig)
}

func (s *PaymentHandlerTestSuite) TestWebhookMissingSignature() {
	w, resp := s.postWebhook([]byte(`{}`), "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(false, resp["success"])
	s.False(s.stub.webhookCalled)
}

func (s *PaymentHandlerTestSuite) TestWebhookInvalidSignature() {
	s.stub.webhookErr = errs.ErrVerificationFailed
	w, resp := s.postWebhook([]byte(`{}`), "bad-sig")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Verification Failed", resp["error"])
}

func (s *PaymentHandlerTestSuite) TestVerifyPaymentAcceptsCheckoutPayload() {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	req := registration.Request{
		Name:           "Asha",
		Email:          "asha@example.com",
		WhatsApp:       "+919800000001",
		SelectedEvents: []int{1},
	}
	s.stub.verifyResult = &commands.VerifyPaymentResult{
		Registration: registration.NewPaid("TF2025-ABCD1234", "uid-1", "asha@example.com", req, registration.PaymentDetails{
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Amount:    99,
			Currency:  "INR",
			Status:    "paid",
			Method:    registration.VerifiedBySignature,
			PaidAt:    now,
		}, now),
	}

	// The frontend forwards the checkout result together with the original
	// registration data; the latter must bind without being required.
	body := []byte(`{
		"orderId": "order_1",
		"paymentId": "pay_1",
		"signature": "sig-value",
		"registrationData": {
			"name": "Asha",
			"email": "asha@example.com",
			"whatsapp": "+919800000001",
			"selectedEvents": [1]
		}
	}`)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/payment/verify-payment", bytes.NewReader(body))
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusOK, w.Code)
	s.True(s.stub.verifyCalled)
	s.Equal("order_1", s.stub.verifyOrderID)
	s.Equal("pay_1", s.stub.verifyPaymentID)
	s.Equal("sig-value", s.stub.verifySignature)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(true, resp["success"])
}

func (s *PaymentHandlerTestSuite) TestVerifyPaymentWithoutRegistrationData() {
	body := []byte(`{"orderId":"order_x","paymentId":"pay_x","signature":"sig"}`)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/payment/verify-payment", bytes.NewReader(body))
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusNotFound, w.Code)
	s.True(s.stub.verifyCalled)
	s.Equal("order_x", s.stub.verifyOrderID)
}

func (s *PaymentHandlerTestSuite) TestVerifyPaymentMissingFields() {
	body := []byte(`{"orderId":"order_1"}`)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/payment/verify-payment", bytes.NewReader(body))
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.stub.verifyCalled)
}

func (s *PaymentHandlerTestSuite) TestCreateOrderWithoutCaller() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment/create-order", bytes.NewReader([]byte(`{}`)))
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}
