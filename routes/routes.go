package routes

import (
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers wired by the server entrypoint.
type Handlers struct {
	Vehicle     *handlers.VehicleHandler
	Trip        *handlers.TripHandler
	Fuel        *handlers.FuelHandler
	Maintenance *handlers.MaintenanceHandler
	Report      *handlers.ReportHandler
	Dashboard   *handlers.DashboardHandler
}

// Setup registers the full API surface under /api/v1. Every route requires a
// valid bearer token; per-record authorization lives in the service layer.
func Setup(router *gin.Engine, h *Handlers, jwtSecret string) {
	api := router.Group("/api/v1")
	api.Use(middleware.AuthRequired(jwtSecret))

	SetupVehicleRoutes(api, h.Vehicle)
	SetupTripRoutes(api, h.Trip)
	SetupFuelRoutes(api, h.Fuel)
	SetupMaintenanceRoutes(api, h.Maintenance)
	SetupReportRoutes(api, h.Report)
	SetupDashboardRoutes(api, h.Dashboard)
}
