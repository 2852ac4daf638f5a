package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupTripRoutes sets up routes for trip scheduling and lifecycle updates
func SetupTripRoutes(r *gin.RouterGroup, tripHandler *handlers.TripHandler) {
	trips := r.Group("/trips")
	{
		trips.GET("", tripHandler.ListTrips)
		trips.GET("/:id", tripHandler.GetTrip)
		// Drivers use this for their own trips; the service checks ownership.
		trips.PUT("/:id/status", tripHandler.UpdateTripStatus)
	}

	staff := trips.Group("")
	staff.Use(middleware.RoleRequired(models.RoleAdministrator, models.RoleOperator))
	{
		staff.POST("", tripHandler.CreateTrip)
		staff.PUT("/:id", tripHandler.UpdateTrip)
	}

	admin := trips.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdministrator))
	{
		admin.DELETE("/:id", tripHandler.DeleteTrip)
	}
}
