package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"
	"fleetops/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// unknownVehicleLabel groups records whose vehicle no longer resolves to a
// registration number.
const unknownVehicleLabel = "Unknown Vehicle"

type ReportService interface {
	GenerateFuelEfficiency(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error)
	GenerateVehicleUtilization(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error)
	GenerateMaintenanceCost(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error)
	Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.PerformanceReport, error)
	List(ctx context.Context, actor models.Actor) ([]*models.PerformanceReport, error)
	Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error
}

type reportService struct {
	reportRepo      interfaces.PerformanceReportRepository
	fuelRepo        interfaces.FuelRecordRepository
	tripRepo        interfaces.TripRepository
	maintenanceRepo interfaces.MaintenanceRepository
	vehicleRepo     interfaces.VehicleRepository
	logger          *logger.Logger
}

func NewReportService(
	reportRepo interfaces.PerformanceReportRepository,
	fuelRepo interfaces.FuelRecordRepository,
	tripRepo interfaces.TripRepository,
	maintenanceRepo interfaces.MaintenanceRepository,
	vehicleRepo interfaces.VehicleRepository,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		reportRepo:      reportRepo,
		fuelRepo:        fuelRepo,
		tripRepo:        tripRepo,
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
	}
}

// GenerateFuelEfficiency summarizes fuel quantity and cost per vehicle over
// the date range, considering only records that carry an odometer reading.
// The average cost per liter is zero for a zero-quantity group rather than a
// division error.
func (s *reportService) GenerateFuelEfficiency(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error) {
	if err := s.checkGenerate(actor, dateRange); err != nil {
		return nil, err
	}

	records, err := s.fuelRepo.ListWithOdometerBetween(ctx, dateRange, vehicleID)
	if err != nil {
		return nil, err
	}

	registrations, err := s.registrationIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*models.FuelEfficiencyRow)
	for _, record := range records {
		label := registrationLabel(registrations, record.VehicleID)
		row, ok := groups[label]
		if !ok {
			row = &models.FuelEfficiencyRow{Vehicle: label}
			groups[label] = row
		}
		row.TotalFuelQuantity += record.FuelQuantity
		row.TotalCost += record.Cost
	}

	rows := make([]models.FuelEfficiencyRow, 0, len(groups))
	for _, row := range groups {
		if row.TotalFuelQuantity > 0 {
			row.AverageCostPerLiter = row.TotalCost / row.TotalFuelQuantity
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Vehicle < rows[j].Vehicle })

	return s.persistReport(ctx, actor, models.ReportTypeFuelEfficiency, rows, dateRange, vehicleID, registrations)
}

// GenerateVehicleUtilization summarizes trip count, distance and duration per
// vehicle over the date range, considering only trips with an actual end
// time. Trips missing either actual timestamp contribute zero duration.
func (s *reportService) GenerateVehicleUtilization(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error) {
	if err := s.checkGenerate(actor, dateRange); err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListCompletedBetween(ctx, dateRange, vehicleID)
	if err != nil {
		return nil, err
	}

	registrations, err := s.registrationIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*models.UtilizationRow)
	for _, trip := range trips {
		label := registrationLabel(registrations, trip.VehicleID)
		row, ok := groups[label]
		if !ok {
			row = &models.UtilizationRow{Vehicle: label}
			groups[label] = row
		}
		row.TotalTrips++
		if trip.ActualDistanceKm != nil {
			row.TotalActualDistanceKm += *trip.ActualDistanceKm
		}
		row.TotalTripDurationHours += trip.ActualDurationHours()
	}

	rows := make([]models.UtilizationRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Vehicle < rows[j].Vehicle })

	return s.persistReport(ctx, actor, models.ReportTypeVehicleUtilization, rows, dateRange, vehicleID, registrations)
}

// GenerateMaintenanceCost summarizes completed maintenance cost and event
// count per vehicle over the date range, considering only records with an
// actual completion date and a cost.
func (s *reportService) GenerateMaintenanceCost(ctx context.Context, actor models.Actor, dateRange models.DateRange, vehicleID primitive.ObjectID) (*models.PerformanceReport, error) {
	if err := s.checkGenerate(actor, dateRange); err != nil {
		return nil, err
	}

	records, err := s.maintenanceRepo.ListCompletedBetween(ctx, dateRange, vehicleID)
	if err != nil {
		return nil, err
	}

	registrations, err := s.registrationIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*models.MaintenanceCostRow)
	for _, record := range records {
		label := registrationLabel(registrations, record.VehicleID)
		row, ok := groups[label]
		if !ok {
			row = &models.MaintenanceCostRow{Vehicle: label}
			groups[label] = row
		}
		if record.Cost != nil {
			row.TotalMaintenanceCost += *record.Cost
		}
		row.MaintenanceEvents++
	}

	rows := make([]models.MaintenanceCostRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Vehicle < rows[j].Vehicle })

	return s.persistReport(ctx, actor, models.ReportTypeMaintenanceCost, rows, dateRange, vehicleID, registrations)
}

func (s *reportService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.PerformanceReport, error) {
	if err := Authorize(actor, "", ActionView); err != nil {
		return nil, err
	}
	return s.reportRepo.GetByID(ctx, id)
}

func (s *reportService) List(ctx context.Context, actor models.Actor) ([]*models.PerformanceReport, error) {
	if err := Authorize(actor, "", ActionView); err != nil {
		return nil, err
	}
	return s.reportRepo.List(ctx)
}

func (s *reportService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	if err := Authorize(actor, "", ActionDelete); err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, id)
}

// checkGenerate gates report generation and rejects an inverted date range
// before any query runs. The comparison is at date granularity, matching how
// the range is applied, so same-day bounds with differing times pass.
func (s *reportService) checkGenerate(actor models.Actor, dateRange models.DateRange) error {
	if err := Authorize(actor, "", ActionGenerateReport); err != nil {
		return err
	}
	if utils.StartOfDay(dateRange.Start).After(utils.StartOfDay(dateRange.End)) {
		return fmt.Errorf("from %s to %s: %w",
			utils.FormatDate(dateRange.Start), utils.FormatDate(dateRange.End), utils.ErrInvalidRange)
	}
	return nil
}

func (s *reportService) registrationIndex(ctx context.Context) (map[primitive.ObjectID]string, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[primitive.ObjectID]string, len(vehicles))
	for _, vehicle := range vehicles {
		index[vehicle.ID] = vehicle.RegistrationNumber
	}
	return index, nil
}

func registrationLabel(registrations map[primitive.ObjectID]string, vehicleID primitive.ObjectID) string {
	if label, ok := registrations[vehicleID]; ok && label != "" {
		return label
	}
	return unknownVehicleLabel
}

// persistReport packages the grouped rows into an immutable report row and
// stores it. The returned report carries its assigned identifier.
func (s *reportService) persistReport(
	ctx context.Context,
	actor models.Actor,
	reportType models.ReportType,
	rows interface{},
	dateRange models.DateRange,
	vehicleID primitive.ObjectID,
	registrations map[primitive.ObjectID]string,
) (*models.PerformanceReport, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report data: %w", err)
	}

	parameters := fmt.Sprintf("From: %s To: %s",
		utils.FormatDate(dateRange.Start), utils.FormatDate(dateRange.End))
	if !vehicleID.IsZero() {
		parameters += fmt.Sprintf(" | For Vehicle: %s", registrationLabel(registrations, vehicleID))
	}

	report := &models.PerformanceReport{
		ReportType:        reportType,
		GeneratedOn:       time.Now().UTC(),
		Data:              string(data),
		ParametersUsed:    parameters,
		GeneratedByUserID: actor.ID,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"report_id":   report.ID.Hex(),
		"report_type": reportType,
		"parameters":  parameters,
	}).Info("performance report generated")

	return report, nil
}
