package api

import (
	"net/http"

	reqdto "techfest-backend/internal/handler/dto/request"
	resdto "techfest-backend/internal/handler/dto/response"
	"techfest-backend/internal/handler/middleware"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrations commands.RegistrationCommands
	reads         queries.RegistrationQueries
}

func NewRegistrationHandler(registrations commands.RegistrationCommands, reads queries.RegistrationQueries) *RegistrationHandler {
	return &RegistrationHandler{
		registrations: registrations,
		reads:         reads,
	}
}

// @Summary Submit registration
// @Description Commit a free registration directly; priced selections are answered with a payment-required response
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegistrationData true "Registration data"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /registration/submit [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortMissingCaller(c)
		return
	}

	var req reqdto.RegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	result, err := h.registrations.Submit(c.Request.Context(), caller, req.ToDomain())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	if result.RequiresPayment {
		c.JSON(http.StatusOK, resdto.SubmitResponse{
			Success:         true,
			Message:         "Payment required to complete registration",
			RequiresPayment: true,
			Amount:          result.Amount,
			Currency:        result.Currency,
		})
		return
	}

	reg := resdto.NewRegistrationResponse(result.Registration)
	c.JSON(http.StatusCreated, resdto.SubmitResponse{
		Success:      true,
		Message:      "Registration confirmed",
		Registration: &reg,
	})
}

// @Summary Check duplicate registration
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DuplicateCheckRequest true "Email and WhatsApp to check"
// @Success 200 {object} resdto.DuplicateCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /registration/check-duplicate [post]
func (h *RegistrationHandler) CheckDuplicate(c *gin.Context) {
	var req reqdto.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	result, err := h.registrations.CheckDuplicate(c.Request.Context(), req.Email, req.WhatsApp)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DuplicateCheckResponse{
		Success:         true,
		Exists:          result.Exists,
		DuplicateFields: result.DuplicateFields,
	})
}

// @Summary List caller's registrations
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /registration/my-registrations [get]
func (h *RegistrationHandler) MyRegistrations(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortMissingCaller(c)
		return
	}

	regs, err := h.reads.MyRegistrations(c.Request.Context(), caller)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"registrations": resdto.NewRegistrationListResponse(regs),
		"total":         len(regs),
	})
}
