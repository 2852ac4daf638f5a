package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupMaintenanceRoutes sets up routes for maintenance records
func SetupMaintenanceRoutes(r *gin.RouterGroup, maintenanceHandler *handlers.MaintenanceHandler) {
	maintenance := r.Group("/maintenance-records")
	{
		maintenance.GET("", maintenanceHandler.ListMaintenance)
		maintenance.GET("/:id", maintenanceHandler.GetMaintenance)
	}

	admin := maintenance.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdministrator))
	{
		admin.POST("", maintenanceHandler.CreateMaintenance)
		admin.PUT("/:id", maintenanceHandler.UpdateMaintenance)
		admin.DELETE("/:id", maintenanceHandler.DeleteMaintenance)
	}
}
