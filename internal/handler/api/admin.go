package api

import (
	"net/http"

	"techfest-backend/internal/domain/registration"
	reqdto "techfest-backend/internal/handler/dto/request"
	resdto "techfest-backend/internal/handler/dto/response"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the on-site desk endpoints. Any authenticated caller
// may use them; there is no separate role model.
type AdminHandler struct {
	admin commands.AdminCommands
	reads queries.RegistrationQueries
}

func NewAdminHandler(admin commands.AdminCommands, reads queries.RegistrationQueries) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		reads: reads,
	}
}

// @Summary List all registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /admin/registrations [get]
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.reads.ListAll(c.Request.Context())
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

// @Summary Check in a registrant
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /admin/registrations/{id}/check-in [post]
func (h *AdminHandler) CheckIn(c *gin.Context) {
	reg, err := h.admin.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithRegistration(c, reg, "Registrant checked in")
}

// @Summary Record attended events and workshops
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body reqdto.AttendanceRequest true "Attended ids"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /admin/registrations/{id}/attendance [post]
func (h *AdminHandler) MarkAttendance(c *gin.Context) {
	var req reqdto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	reg, err := h.admin.MarkAttendance(c.Request.Context(), c.Param("id"), req.Events, req.Workshops)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithRegistration(c, reg, "Attendance recorded")
}

// @Summary Reassign a workshop selection
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body reqdto.ReassignWorkshopRequest true "Source and target workshop ids"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/registrations/{id}/reassign-workshop [post]
func (h *AdminHandler) ReassignWorkshop(c *gin.Context) {
	var req reqdto.ReassignWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	reg, err := h.admin.ReassignWorkshop(c.Request.Context(), c.Param("id"), req.FromWorkshopID, req.ToWorkshopID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithRegistration(c, reg, "Workshop reassigned")
}

// @Summary Update registration notes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body reqdto.NotesRequest true "Notes and flag"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /admin/registrations/{id}/notes [post]
func (h *AdminHandler) UpdateNotes(c *gin.Context) {
	var req reqdto.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}

	reg, err := h.admin.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes, req.Flagged)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithRegistration(c, reg, "Notes updated")
}

func (h *AdminHandler) respondWithRegistration(c *gin.Context, reg *registration.Registration, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      message,
		"registration": resdto.NewRegistrationResponse(reg),
	})
}
