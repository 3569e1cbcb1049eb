package response

import (
	"time"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"
)

type CreateOrderResponse struct {
	Success          bool                  `json:"success"`
	FreeRegistration bool                  `json:"freeRegistration,omitempty"`
	Registration     *RegistrationResponse `json:"registration,omitempty"`
	OrderID          string                `json:"orderId,omitempty"`
	Amount           int                   `json:"amount,omitempty"`
	Currency         string                `json:"currency,omitempty"`
	KeyID            string                `json:"keyId,omitempty"`
	Breakdown        []catalog.LineItem    `json:"breakdown,omitempty"`
}

func NewCreateOrderResponse(result *commands.CreateOrderResult) CreateOrderResponse {
	resp := CreateOrderResponse{
		Success:   true,
		Amount:    result.Amount,
		Currency:  result.Currency,
		Breakdown: result.Quote.Items,
	}
	if result.FreeRegistration {
		resp.FreeRegistration = true
		reg := NewRegistrationResponse(result.Registration)
		resp.Registration = &reg
		return resp
	}
	resp.OrderID = result.OrderID
	resp.KeyID = result.GatewayKey
	return resp
}

type VerifyPaymentResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Replayed     bool                 `json:"replayed,omitempty"`
	Registration RegistrationResponse `json:"registration"`
}

func NewVerifyPaymentResponse(result *commands.VerifyPaymentResult) VerifyPaymentResponse {
	msg := "Payment verified and registration confirmed"
	if result.Replayed {
		msg = "Payment already verified"
	}
	return VerifyPaymentResponse{
		Success:      true,
		Message:      msg,
		Replayed:     result.Replayed,
		Registration: NewRegistrationResponse(result.Registration),
	}
}

type OrderStatusResponse struct {
	Success        bool      `json:"success"`
	OrderID        string    `json:"orderId"`
	Amount         int       `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	RegistrationID string    `json:"registrationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewOrderStatusResponse(view *queries.OrderStatusView) OrderStatusResponse {
	return OrderStatusResponse{
		Success:        true,
		OrderID:        view.OrderID,
		Amount:         view.Amount,
		Currency:       view.Currency,
		Status:         view.Status,
		RegistrationID: view.RegistrationID,
		CreatedAt:      view.CreatedAt,
	}
}
