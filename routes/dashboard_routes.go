package routes

import (
	"fleetops/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the landing dashboard route
func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	r.GET("/dashboard", dashboardHandler.GetSummary)
}
