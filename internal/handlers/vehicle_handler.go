package handlers

import (
	"fleetops/internal/models"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle registers a new fleet vehicle
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.vehicleService.Create(c.Request.Context(), actor, &vehicle)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", created)
}

// GetVehicle retrieves one vehicle
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles retrieves all fleet vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", map[string]interface{}{
		"vehicles": vehicles,
	}, &utils.Meta{Count: len(vehicles)})
}

// UpdateVehicle edits a vehicle
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	vehicle.ID = id

	updated, err := h.vehicleService.Update(c.Request.Context(), actor, &vehicle)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", updated)
}

// DeleteVehicle removes a vehicle and its fuel and maintenance history
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.ServiceErrorResponse(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}
