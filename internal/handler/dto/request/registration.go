package request

import (
	"techfest-backend/internal/domain/registration"
)

// RegistrationData is the registrant profile plus selection set as submitted
// by the frontend, both standalone and embedded in payment requests.
type RegistrationData struct {
	Name                  string `json:"name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	WhatsApp              string `json:"whatsapp" binding:"required"`
	College               string `json:"college"`
	Year                  string `json:"year"`
	SelectedPass          *int   `json:"selectedPass"`
	SelectedEvents        []int  `json:"selectedEvents"`
	SelectedWorkshops     []int  `json:"selectedWorkshops"`
	SelectedNonTechEvents []int  `json:"selectedNonTechEvents"`
}

func (r RegistrationData) ToDomain() registration.Request {
	return registration.Request{
		Name:                  r.Name,
		Email:                 r.Email,
		WhatsApp:              r.WhatsApp,
		College:               r.College,
		Year:                  r.Year,
		SelectedPass:          r.SelectedPass,
		SelectedEvents:        r.SelectedEvents,
		SelectedWorkshops:     r.SelectedWorkshops,
		SelectedNonTechEvents: r.SelectedNonTechEvents,
	}
}

type DuplicateCheckRequest struct {
	Email    string `json:"email" binding:"required"`
	WhatsApp string `json:"whatsapp" binding:"required"`
}
