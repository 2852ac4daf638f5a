package handlers

import (
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary retrieves the fleet-wide dashboard counters and chart series
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Dashboard")
		return
	}

	utils.SuccessResponse(c, "Dashboard summary retrieved successfully", summary)
}
