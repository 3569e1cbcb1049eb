package response

import (
	"time"

	"techfest-backend/internal/domain/registration"
)

type PaymentDetailsResponse struct {
	OrderID   string    `json:"orderId"`
	PaymentID string    `json:"paymentId"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paidAt"`
}

type RegistrationResponse struct {
	RegistrationID        string                  `json:"registrationId"`
	Name                  string                  `json:"name"`
	Email                 string                  `json:"email"`
	WhatsApp              string                  `json:"whatsapp"`
	College               string                  `json:"college,omitempty"`
	Year                  string                  `json:"year,omitempty"`
	SelectedPass          *int                    `json:"selectedPass,omitempty"`
	SelectedEvents        []int                   `json:"selectedEvents,omitempty"`
	SelectedWorkshops     []int                   `json:"selectedWorkshops,omitempty"`
	SelectedNonTechEvents []int                   `json:"selectedNonTechEvents,omitempty"`
	Status                string                  `json:"status"`
	PaymentStatus         string                  `json:"paymentStatus"`
	Payment               *PaymentDetailsResponse `json:"payment,omitempty"`
	EventCount            int                     `json:"eventCount"`
	CheckedIn             bool                    `json:"checkedIn"`
	CheckedInAt           *time.Time              `json:"checkedInAt,omitempty"`
	AttendedEvents        []int                   `json:"attendedEvents,omitempty"`
	AttendedWorkshops     []int                   `json:"attendedWorkshops,omitempty"`
	Notes                 string                  `json:"notes,omitempty"`
	Flagged               bool                    `json:"flagged"`
	CreatedAt             time.Time               `json:"createdAt"`
}

func NewRegistrationResponse(reg *registration.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		RegistrationID:        reg.RegistrationID,
		Name:                  reg.Request.Name,
		Email:                 reg.Request.Email,
		WhatsApp:              reg.Request.WhatsApp,
		College:               reg.Request.College,
		Year:                  reg.Request.Year,
		SelectedPass:          reg.Request.SelectedPass,
		SelectedEvents:        reg.Request.SelectedEvents,
		SelectedWorkshops:     reg.Request.SelectedWorkshops,
		SelectedNonTechEvents: reg.Request.SelectedNonTechEvents,
		Status:                string(reg.Status),
		PaymentStatus:         string(reg.PaymentStatus),
		EventCount:            reg.EventCount,
		CheckedIn:             reg.CheckedIn,
		CheckedInAt:           reg.CheckedInAt,
		AttendedEvents:        reg.AttendedEvents,
		AttendedWorkshops:     reg.AttendedWorkshops,
		Notes:                 reg.Notes,
		Flagged:               reg.Flagged,
		CreatedAt:             reg.CreatedAt,
	}
	if reg.Payment != nil {
		resp.Payment = &PaymentDetailsResponse{
			OrderID:   reg.Payment.OrderID,
			PaymentID: reg.Payment.PaymentID,
			Amount:    reg.Payment.Amount,
			Currency:  reg.Payment.Currency,
			Status:    reg.Payment.Status,
			Method:    string(reg.Payment.Method),
			PaidAt:    reg.Payment.PaidAt,
		}
	}
	return resp
}

func NewRegistrationListResponse(regs []*registration.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, NewRegistrationResponse(reg))
	}
	return out
}

type DuplicateCheckResponse struct {
	Success         bool     `json:"success"`
	Exists          bool     `json:"exists"`
	DuplicateFields []string `json:"duplicateFields,omitempty"`
}

type SubmitResponse struct {
	Success         bool                  `json:"success"`
	Message         string                `json:"message,omitempty"`
	RequiresPayment bool                  `json:"requiresPayment,omitempty"`
	Amount          int                   `json:"amount,omitempty"`
	Currency        string                `json:"currency,omitempty"`
	Registration    *RegistrationResponse `json:"registration,omitempty"`
}
