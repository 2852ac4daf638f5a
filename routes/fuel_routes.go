package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupFuelRoutes sets up routes for fuel record keeping
func SetupFuelRoutes(r *gin.RouterGroup, fuelHandler *handlers.FuelHandler) {
	fuel := r.Group("/fuel-records")
	{
		fuel.GET("", fuelHandler.ListFuelRecords)
		fuel.GET("/:id", fuelHandler.GetFuelRecord)
		// Drivers file records against themselves; the service checks ownership.
		fuel.POST("", fuelHandler.CreateFuelRecord)
	}

	staff := fuel.Group("")
	staff.Use(middleware.RoleRequired(models.RoleAdministrator, models.RoleOperator))
	{
		staff.PUT("/:id", fuelHandler.UpdateFuelRecord)
	}

	admin := fuel.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdministrator))
	{
		admin.DELETE("/:id", fuelHandler.DeleteFuelRecord)
	}
}
