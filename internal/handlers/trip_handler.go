package handlers

import (
	"fleetops/internal/models"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripService services.TripService
}

func NewTripHandler(tripService services.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// CreateTrip schedules a new trip
func (h *TripHandler) CreateTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.tripService.Create(c.Request.Context(), actor, &trip)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.CreatedResponse(c, "Trip created successfully", created)
}

// GetTrip retrieves one trip
func (h *TripHandler) GetTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.SuccessResponse(c, "Trip retrieved successfully", trip)
}

// ListTrips retrieves trips matching the query filters. Drivers only ever see
// their own trips.
func (h *TripHandler) ListTrips(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	vehicleID, ok := vehicleIDQuery(c)
	if !ok {
		return
	}

	filter := models.TripFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		VehicleID: vehicleID,
		DriverID:  c.Query("driver_id"),
	}

	trips, err := h.tripService.List(c.Request.Context(), actor, filter)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.SuccessResponseWithMeta(c, "Trips retrieved successfully", map[string]interface{}{
		"trips": trips,
	}, &utils.Meta{Count: len(trips)})
}

// UpdateTrip edits a trip's scheduling and routing fields
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	trip.ID = id

	updated, err := h.tripService.Update(c.Request.Context(), actor, &trip)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.SuccessResponse(c, "Trip updated successfully", updated)
}

// UpdateTripStatus applies a status transition with derived timestamps
func (h *TripHandler) UpdateTripStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var update services.TripStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), actor, id, update)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.SuccessResponse(c, "Trip status updated successfully", trip)
}

// DeleteTrip removes a trip
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.tripService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.ServiceErrorResponse(c, err, "Trip")
		return
	}

	utils.SuccessResponse(c, "Trip deleted successfully", nil)
}
