package api

import (
	"net/http"
	"strconv"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static event, workshop and pass reference data.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]any
// @Router /events [get]
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	events := h.catalog.Events()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   len(events),
	})
}

// @Summary List technical events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]any
// @Router /events/tech [get]
func (h *CatalogHandler) ListTechEvents(c *gin.Context) {
	events := h.catalog.TechEvents()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   len(events),
	})
}

// @Summary List non-technical events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]any
// @Router /events/non-tech [get]
func (h *CatalogHandler) ListNonTechEvents(c *gin.Context) {
	events := h.catalog.NonTechEvents()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   len(events),
	})
}

// @Summary Get event by id
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *CatalogHandler) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithDomainError(c, errs.ErrEventNotFound)
		return
	}
	event, ok := h.catalog.EventByID(id)
	if !ok {
		abortWithDomainError(c, errs.ErrEventNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// @Summary List all workshops
// @Tags workshops
// @Produce json
// @Success 200 {object} map[string]any
// @Router /workshops [get]
func (h *CatalogHandler) ListWorkshops(c *gin.Context) {
	workshops := h.catalog.Workshops()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"workshops": workshops,
		"total":     len(workshops),
	})
}

// @Summary List workshops by category
// @Tags workshops
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]any
// @Router /workshops/category/{category} [get]
func (h *CatalogHandler) ListWorkshopsByCategory(c *gin.Context) {
	workshops := h.catalog.WorkshopsByCategory(c.Param("category"))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"workshops": workshops,
		"total":     len(workshops),
	})
}

// @Summary List workshops by level
// @Tags workshops
// @Produce json
// @Param level path string true "Level"
// @Success 200 {object} map[string]any
// @Router /workshops/level/{level} [get]
func (h *CatalogHandler) ListWorkshopsByLevel(c *gin.Context) {
	workshops := h.catalog.WorkshopsByLevel(c.Param("level"))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"workshops": workshops,
		"total":     len(workshops),
	})
}

// @Summary List distinct workshop categories
// @Tags workshops
// @Produce json
// @Success 200 {object} map[string]any
// @Router /workshops/categories [get]
func (h *CatalogHandler) ListWorkshopCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": h.catalog.WorkshopCategories(),
	})
}

// @Summary List distinct workshop levels
// @Tags workshops
// @Produce json
// @Success 200 {object} map[string]any
// @Router /workshops/levels [get]
func (h *CatalogHandler) ListWorkshopLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"levels":  h.catalog.WorkshopLevels(),
	})
}

// @Summary Get workshop by id
// @Tags workshops
// @Produce json
// @Param id path int true "Workshop ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /workshops/{id} [get]
func (h *CatalogHandler) GetWorkshop(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithDomainError(c, errs.ErrWorkshopNotFound)
		return
	}
	workshop, ok := h.catalog.WorkshopByID(id)
	if !ok {
		abortWithDomainError(c, errs.ErrWorkshopNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workshop": workshop})
}

// @Summary List all passes
// @Tags passes
// @Produce json
// @Success 200 {object} map[string]any
// @Router /passes [get]
func (h *CatalogHandler) ListPasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"passes":  h.catalog.Passes(),
	})
}

// @Summary Get pass by id
// @Tags passes
// @Produce json
// @Param id path int true "Pass ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /passes/{id} [get]
func (h *CatalogHandler) GetPass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithDomainError(c, errs.ErrPassNotFound)
		return
	}
	pass, ok := h.catalog.PassByID(id)
	if !ok {
		abortWithDomainError(c, errs.ErrPassNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pass": pass})
}
