package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes sets up routes for performance reports
func SetupReportRoutes(r *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := r.Group("/reports")
	{
		reports.GET("", reportHandler.ListReports)
		reports.GET("/:id", reportHandler.GetReport)
	}

	admin := reports.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdministrator))
	{
		admin.POST("/fuel-efficiency", reportHandler.GenerateFuelEfficiency)
		admin.POST("/vehicle-utilization", reportHandler.GenerateVehicleUtilization)
		admin.POST("/maintenance-cost", reportHandler.GenerateMaintenanceCost)
		admin.DELETE("/:id", reportHandler.DeleteReport)
	}
}
