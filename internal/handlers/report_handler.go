package handlers

import (
	"context"

	"fleetops/internal/models"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReportRequest carries the report parameters. Dates use the
// YYYY-MM-DD form; an empty vehicle id means the whole fleet.
type GenerateReportRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	VehicleID string `json:"vehicle_id"`
}

// GenerateFuelEfficiency generates and stores a fuel efficiency report
func (h *ReportHandler) GenerateFuelEfficiency(c *gin.Context) {
	h.generate(c, h.reportService.GenerateFuelEfficiency)
}

// GenerateVehicleUtilization generates and stores a vehicle utilization report
func (h *ReportHandler) GenerateVehicleUtilization(c *gin.Context) {
	h.generate(c, h.reportService.GenerateVehicleUtilization)
}

// GenerateMaintenanceCost generates and stores a maintenance cost report
func (h *ReportHandler) GenerateMaintenanceCost(c *gin.Context) {
	h.generate(c, h.reportService.GenerateMaintenanceCost)
}

type generateFunc func(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error)

func (h *ReportHandler) generate(c *gin.Context, fn generateFunc) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var request GenerateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	vehicleID := primitive.NilObjectID
	if request.VehicleID != "" && request.VehicleID != models.FilterAll {
		vehicleID, err = primitive.ObjectIDFromHex(request.VehicleID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid vehicle ID")
			return
		}
	}

	report, err := fn(c.Request.Context(), actor, models.DateRange{Start: start, End: end}, vehicleID)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Report")
		return
	}

	utils.CreatedResponse(c, "Report generated successfully", report)
}

// GetReport retrieves one stored report
func (h *ReportHandler) GetReport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Report")
		return
	}

	utils.SuccessResponse(c, "Report retrieved successfully", report)
}

// ListReports retrieves stored reports, newest first
func (h *ReportHandler) ListReports(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Report")
		return
	}

	utils.SuccessResponseWithMeta(c, "Reports retrieved successfully", map[string]interface{}{
		"reports": reports,
	}, &utils.Meta{Count: len(reports)})
}

// DeleteReport removes a stored report
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.ServiceErrorResponse(c, err, "Report")
		return
	}

	utils.SuccessResponse(c, "Report deleted successfully", nil)
}
