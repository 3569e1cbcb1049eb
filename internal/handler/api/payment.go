package api

import (
	"io"
	"net/http"

	reqdto "techfest-backend/internal/handler/dto/request"
	resdto "techfest-backend/internal/handler/dto/response"
	"techfest-backend/internal/handler/httperr"
	"techfest-backend/internal/handler/middleware"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "X-Razorpay-Signature"

type PaymentHandler struct {
	payments commands.PaymentCommands
	orders   queries.OrderQueries
}

func NewPaymentHandler(payments commands.PaymentCommands, orders queries.OrderQueries) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		orders:   orders,
	}
}

// @Summary Create payment order
// @Description Price the selection server-side and open a gateway order; free selections are committed directly
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 200 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payment/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortMissingCaller(c)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	result, err := h.payments.CreateOrder(c.Request.Context(), caller, req.RegistrationData.ToDomain(), req.Currency, req.Notes)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewCreateOrderResponse(result))
}

// @Summary Verify payment
// @Description Verify a payment proof (checkout signature or polling sentinel) and commit the registration
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPaymentRequest true "Verification request"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payment/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortMissingCaller(c)
		return
	}

	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	result, err := h.payments.VerifyPayment(c.Request.Context(), caller, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewVerifyPaymentResponse(result))
}

// @Summary Get order status
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Gateway order id"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payment/status/{orderId} [get]
func (h *PaymentHandler) GetOrderStatus(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortMissingCaller(c)
		return
	}

	view, err := h.orders.GetStatus(c.Request.Context(), caller, c.Param("orderId"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewOrderStatusResponse(view))
}

// @Summary Payment provider webhook
// @Description Verify the webhook HMAC and commit payment.captured events; other event types are acknowledged
// @Tags payment
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /payment/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortInvalidBody(c, err)
		return
	}

	signature := c.GetHeader(webhookSignatureHeader)
	if signature == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrVerificationFailed, "Bad Request", "Missing webhook signature")
		return
	}

	if err := h.payments.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
