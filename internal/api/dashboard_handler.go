package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/core"
)

// DashboardHandler handles the dashboard aggregate endpoint.
type DashboardHandler struct {
	statsService core.StatsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ss core.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: ss}
}

// GetStats handles GET /dashboard/stats. Individual degraded reads are
// absorbed inside the service; only a failure of the aggregation itself
// reaches here and becomes a 500.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
