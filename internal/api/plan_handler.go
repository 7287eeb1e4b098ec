package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/listquery"
	"photoevent-admin-go/internal/models"
)

// PlanHandler handles the subscription plan endpoints.
type PlanHandler struct {
	planService core.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(ps core.PlanService) *PlanHandler {
	return &PlanHandler{planService: ps}
}

// mapPlanErrorToStatus maps errors from core.PlanService to HTTP status codes.
func mapPlanErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrPlanNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /subscriptions. The table pipeline (filter, sort, page)
// runs server-side over the full collection; ?active=true narrows to active
// plans before the pipeline.
func (h *PlanHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	plans, err := h.planService.List(c.Request.Context(), activeOnly)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, listquery.Apply(plans, listParams(c), models.PlanSearchFields, models.PlanSortKey))
}

// ListByDuration handles GET /subscriptions/duration/:duration.
func (h *PlanHandler) ListByDuration(c *gin.Context) {
	duration := models.CanonicalDuration(c.Param("duration"))
	plans, err := h.planService.ListByDuration(c.Request.Context(), duration)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// MostPopular handles GET /subscriptions/most-popular.
func (h *PlanHandler) MostPopular(c *gin.Context) {
	plan, err := h.planService.MostPopular(c.Request.Context())
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Get handles GET /subscriptions/:planId.
func (h *PlanHandler) Get(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}
	plan, err := h.planService.GetByID(c.Request.Context(), planID)
	if err != nil {
		mapPlanErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Create handles POST /subscriptions. Mutations report their outcome in the
// body; a failed mutation is still a 200 with success=false.
func (h *PlanHandler) Create(c *gin.Context) {
	var req models.PlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.planService.Create(c.Request.Context(), req))
}

// Update handles PUT /subscriptions/:planId.
func (h *PlanHandler) Update(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}
	var req models.PlanUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.planService.Update(c.Request.Context(), planID, req))
}

// ToggleStatus handles PATCH /subscriptions/:planId/status.
func (h *PlanHandler) ToggleStatus(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}
	var req models.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.planService.SetActive(c.Request.Context(), planID, req.IsActive))
}

// Delete handles DELETE /subscriptions/:planId.
func (h *PlanHandler) Delete(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}
	c.JSON(http.StatusOK, h.planService.Delete(c.Request.Context(), planID))
}

// BulkDelete handles POST /subscriptions/bulk-delete.
func (h *PlanHandler) BulkDelete(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.planService.DeleteMany(c.Request.Context(), req.IDs))
}
