package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for fleet vehicle management
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	// Fleet mutations are administrator territory
	admin := vehicles.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdministrator))
	{
		admin.POST("", vehicleHandler.CreateVehicle)
		admin.PUT("/:id", vehicleHandler.UpdateVehicle)
		admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
