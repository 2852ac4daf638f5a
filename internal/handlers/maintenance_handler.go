package handlers

import (
	"fleetops/internal/models"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceService services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// CreateMaintenance schedules or records maintenance work
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var maintenance models.Maintenance
	if err := c.ShouldBindJSON(&maintenance); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.maintenanceService.Create(c.Request.Context(), actor, &maintenance)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Maintenance record")
		return
	}

	utils.CreatedResponse(c, "Maintenance record created successfully", created)
}

// GetMaintenance retrieves one maintenance record
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Maintenance record")
		return
	}

	utils.SuccessResponse(c, "Maintenance record retrieved successfully", maintenance)
}

// ListMaintenance retrieves maintenance records matching the query filters
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	vehicleID, ok := vehicleIDQuery(c)
	if !ok {
		return
	}
	dateRange, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	filter := models.MaintenanceFilter{
		Search:          c.Query("search"),
		Status:          c.Query("status"),
		VehicleID:       vehicleID,
		MaintenanceType: c.Query("maintenance_type"),
		DateRange:       dateRange,
	}

	records, err := h.maintenanceService.List(c.Request.Context(), actor, filter)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Maintenance record")
		return
	}

	utils.SuccessResponseWithMeta(c, "Maintenance records retrieved successfully", map[string]interface{}{
		"maintenance_records": records,
	}, &utils.Meta{Count: len(records)})
}

// UpdateMaintenance edits a maintenance record and reconciles the vehicle
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var maintenance models.Maintenance
	if err := c.ShouldBindJSON(&maintenance); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	maintenance.ID = id

	updated, err := h.maintenanceService.Update(c.Request.Context(), actor, &maintenance)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Maintenance record")
		return
	}

	utils.SuccessResponse(c, "Maintenance record updated successfully", updated)
}

// DeleteMaintenance removes a maintenance record and reconciles the vehicle
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.ServiceErrorResponse(c, err, "Maintenance record")
		return
	}

	utils.SuccessResponse(c, "Maintenance record deleted successfully", nil)
}
