package handlers

import (
	"fleetops/internal/models"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type FuelHandler struct {
	fuelService services.FuelService
}

func NewFuelHandler(fuelService services.FuelService) *FuelHandler {
	return &FuelHandler{
		fuelService: fuelService,
	}
}

// CreateFuelRecord files a fueling event
func (h *FuelHandler) CreateFuelRecord(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var record models.FuelRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.fuelService.Create(c.Request.Context(), actor, &record)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Fuel record")
		return
	}

	utils.CreatedResponse(c, "Fuel record created successfully", created)
}

// GetFuelRecord retrieves one fuel record
func (h *FuelHandler) GetFuelRecord(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := h.fuelService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Fuel record")
		return
	}

	utils.SuccessResponse(c, "Fuel record retrieved successfully", record)
}

// ListFuelRecords retrieves fuel records matching the query filters. Drivers
// only ever see their own records.
func (h *FuelHandler) ListFuelRecords(c *gin.Context) {
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

	filter := models.FuelRecordFilter{
		Search:    c.Query("search"),
		VehicleID: vehicleID,
		DriverID:  c.Query("driver_id"),
		DateRange: dateRange,
	}

	records, err := h.fuelService.List(c.Request.Context(), actor, filter)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Fuel record")
		return
	}

	utils.SuccessResponseWithMeta(c, "Fuel records retrieved successfully", map[string]interface{}{
		"fuel_records": records,
	}, &utils.Meta{Count: len(records)})
}

// UpdateFuelRecord edits a fuel record
func (h *FuelHandler) UpdateFuelRecord(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var record models.FuelRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	record.ID = id

	updated, err := h.fuelService.Update(c.Request.Context(), actor, &record)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Fuel record")
		return
	}

	utils.SuccessResponse(c, "Fuel record updated successfully", updated)
}

// DeleteFuelRecord removes a fuel record
func (h *FuelHandler) DeleteFuelRecord(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.fuelService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.ServiceErrorResponse(c, err, "Fuel record")
		return
	}

	utils.SuccessResponse(c, "Fuel record deleted successfully", nil)
}
