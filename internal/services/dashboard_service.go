package services

import (
	"context"
	"sort"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"
	"fleetops/pkg/cache"
	"fleetops/pkg/logger"
)

// DashboardCache is the slice of the redis cache the dashboard needs.
type DashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type DashboardService interface {
	Summary(ctx context.Context, actor models.Actor) (*models.DashboardSummary, error)
}

type dashboardService struct {
	vehicleRepo     interfaces.VehicleRepository
	tripRepo        interfaces.TripRepository
	fuelRepo        interfaces.FuelRecordRepository
	maintenanceRepo interfaces.MaintenanceRepository
	cache           DashboardCache
	logger          *logger.Logger
}

func NewDashboardService(
	vehicleRepo interfaces.VehicleRepository,
	tripRepo interfaces.TripRepository,
	fuelRepo interfaces.FuelRecordRepository,
	maintenanceRepo interfaces.MaintenanceRepository,
	dashboardCache DashboardCache,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		fuelRepo:        fuelRepo,
		maintenanceRepo: maintenanceRepo,
		cache:           dashboardCache,
		logger:          logger,
	}
}

// Summary returns the fleet-wide counters and chart series, served from the
// cache while fresh. Cache failures degrade to a direct computation.
func (s *dashboardService) Summary(ctx context.Context, actor models.Actor) (*models.DashboardSummary, error) {
	if err := Authorize(actor, "", ActionView); err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached models.DashboardSummary
		err := s.cache.Get(ctx, utils.CacheDashboardKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !cache.IsMiss(err) {
			s.logger.WithError(err).Warn("dashboard cache read failed")
		}
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, utils.CacheDashboardKey, summary, utils.DashboardCacheTTL); err != nil {
			s.logger.WithError(err).Warn("dashboard cache write failed")
		}
	}

	return summary, nil
}

func (s *dashboardService) compute(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{GeneratedAt: time.Now().UTC()}

	var err error
	if summary.TotalVehicles, err = s.vehicleRepo.Count(ctx); err != nil {
		return nil, err
	}

	vehicleStatuses := []models.VehicleStatus{
		models.VehicleStatusActive,
		models.VehicleStatusInMaintenance,
		models.VehicleStatusOutOfService,
		models.VehicleStatusRetired,
	}
	for _, status := range vehicleStatuses {
		count, err := s.vehicleRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.VehicleStatusActive:
			summary.AvailableVehicles = count
		case models.VehicleStatusInMaintenance:
			summary.VehiclesInMaintenance = count
		default:
			summary.UnavailableVehicles += count
		}
		summary.VehicleStatusCounts = append(summary.VehicleStatusCounts, models.ChartPoint{
			Label: status.Label(),
			Value: float64(count),
		})
	}

	if summary.TotalTrips, err = s.tripRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.UpcomingTrips, err = s.tripRepo.CountScheduledAfter(ctx, time.Now()); err != nil {
		return nil, err
	}

	tripStatuses := []models.TripStatus{
		models.TripStatusPending,
		models.TripStatusInProgress,
		models.TripStatusCompleted,
		models.TripStatusDelayed,
		models.TripStatusCanceled,
	}
	for _, status := range tripStatuses {
		count, err := s.tripRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.TripStatusInProgress:
			summary.TripsInProgress = count
		case models.TripStatusCompleted:
			summary.CompletedTrips = count
		}
		summary.TripStatusCounts = append(summary.TripStatusCounts, models.ChartPoint{
			Label: string(status),
			Value: float64(count),
		})
	}

	if summary.PendingMaintenance, err = s.maintenanceRepo.CountByStatus(ctx, models.MaintenanceStatusScheduled); err != nil {
		return nil, err
	}
	if summary.OverdueMaintenance, err = s.maintenanceRepo.CountByStatus(ctx, models.MaintenanceStatusOverdue); err != nil {
		return nil, err
	}

	if summary.MaintenanceCostByType, err = s.maintenanceCostByType(ctx); err != nil {
		return nil, err
	}

	if err := s.fuelSeries(ctx, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// maintenanceCostByType sums completed maintenance cost per maintenance type
// across the whole history.
func (s *dashboardService) maintenanceCostByType(ctx context.Context) ([]models.ChartPoint, error) {
	records, err := s.maintenanceRepo.List(ctx, models.MaintenanceFilter{})
	if err != nil {
		return nil, err
	}

	costs := make(map[string]float64)
	for _, record := range records {
		if record.Cost == nil {
			continue
		}
		costs[record.MaintenanceType] += *record.Cost
	}

	points := make([]models.ChartPoint, 0, len(costs))
	for maintenanceType, cost := range costs {
		points = append(points, models.ChartPoint{Label: maintenanceType, Value: cost})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points, nil
}

// fuelSeries fills the trailing fuel cost counter and the daily consumption
// chart from one query over the wider window. Days without records appear as
// zero points so the chart has a fixed width.
func (s *dashboardService) fuelSeries(ctx context.Context, summary *models.DashboardSummary) error {
	windowStart := utils.StartOfDay(utils.DaysAgo(utils.FuelCostWindowDays))
	records, err := s.fuelRepo.ListSince(ctx, windowStart)
	if err != nil {
		return err
	}

	chartStart := utils.StartOfDay(utils.DaysAgo(utils.FuelConsumptionChartDays - 1))
	daily := make(map[string]float64)
	for _, record := range records {
		summary.FuelCostLast30Days += record.Cost
		if record.Date.Before(chartStart) {
			continue
		}
		daily[utils.FormatDate(record.Date)] += record.FuelQuantity
	}

	for i := 0; i < utils.FuelConsumptionChartDays; i++ {
		day := chartStart.AddDate(0, 0, i)
		summary.FuelConsumption7Days = append(summary.FuelConsumption7Days, models.DailyFuelConsumption{
			Date:   day,
			Amount: daily[utils.FormatDate(day)],
		})
	}
	return nil
}
