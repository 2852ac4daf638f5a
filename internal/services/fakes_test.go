package services

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories mirroring the mongodb implementations: Create assigns
// an id and version 1, Update performs the optimistic-concurrency check, and
// listings reuse the filters' Matches methods.

type fakeVehicleRepo struct {
	vehicles map[primitive.ObjectID]*models.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID.IsZero() {
		vehicle.ID = primitive.NewObjectID()
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusActive
	}
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	vehicle.Version = 1
	stored := *vehicle
	r.vehicles[vehicle.ID] = &stored
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	stored, ok := r.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	stored, ok := r.vehicles[vehicle.ID]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", vehicle.ID.Hex(), utils.ErrNotFound)
	}
	if stored.Version != vehicle.Version {
		return fmt.Errorf("vehicle %s: %w", vehicle.ID.Hex(), utils.ErrConcurrencyConflict)
	}
	vehicle.Version++
	vehicle.UpdatedAt = time.Now()
	updated := *vehicle
	r.vehicles[vehicle.ID] = &updated
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.vehicles[id]; !ok {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.vehicles[id]
	return ok, nil
}

func (r *fakeVehicleRepo) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	for _, vehicle := range r.vehicles {
		if vehicle.RegistrationNumber == registrationNumber {
			copy := *vehicle
			return &copy, nil
		}
	}
	return nil, fmt.Errorf("vehicle %s: %w", registrationNumber, utils.ErrNotFound)
}

func (r *fakeVehicleRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	stored, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}
	stored.Status = status
	stored.Version++
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVehicleRepo) RaiseOdometer(ctx context.Context, id primitive.ObjectID, odometerKm float64) error {
	stored, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}
	if odometerKm > stored.CurrentOdometerKm {
		stored.CurrentOdometerKm = odometerKm
		stored.Version++
		stored.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles := make([]*models.Vehicle, 0, len(r.vehicles))
	for _, vehicle := range r.vehicles {
		copy := *vehicle
		vehicles = append(vehicles, &copy)
	}
	return vehicles, nil
}

func (r *fakeVehicleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.vehicles)), nil
}

func (r *fakeVehicleRepo) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var count int64
	for _, vehicle := range r.vehicles {
		if vehicle.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeTripRepo struct {
	trips map[primitive.ObjectID]*models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[primitive.ObjectID]*models.Trip)}
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	if trip.ID.IsZero() {
		trip.ID = primitive.NewObjectID()
	}
	if trip.Status == "" {
		trip.Status = models.TripStatusPending
	}
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.Version = 1
	stored := *trip
	r.trips[trip.ID] = &stored
	return nil
}

func (r *fakeTripRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	stored, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, trip *models.Trip) error {
	stored, ok := r.trips[trip.ID]
	if !ok {
		return fmt.Errorf("trip %s: %w", trip.ID.Hex(), utils.ErrNotFound)
	}
	if stored.Version != trip.Version {
		return fmt.Errorf("trip %s: %w", trip.ID.Hex(), utils.ErrConcurrencyConflict)
	}
	trip.Version++
	trip.UpdatedAt = time.Now()
	updated := *trip
	r.trips[trip.ID] = &updated
	return nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("trip %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(r.trips, id)
	return nil
}

func (r *fakeTripRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.trips[id]
	return ok, nil
}

func (r *fakeTripRepo) List(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	var trips []*models.Trip
	for _, trip := range r.trips {
		if filter.Matches(trip) {
			copy := *trip
			trips = append(trips, &copy)
		}
	}
	return trips, nil
}

func (r *fakeTripRepo) ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Trip, error) {
	var trips []*models.Trip
	for _, trip := range r.trips {
		if trip.ActualEndTime == nil {
			continue
		}
		if !dateRange.Contains(trip.ScheduledStartTime) {
			continue
		}
		if !vehicleID.IsZero() && trip.VehicleID != vehicleID {
			continue
		}
		copy := *trip
		trips = append(trips, &copy)
	}
	return trips, nil
}

func (r *fakeTripRepo) CountByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	var count int64
	for _, trip := range r.trips {
		if trip.VehicleID == vehicleID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTripRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.trips)), nil
}

func (r *fakeTripRepo) CountByStatus(ctx context.Context, status models.TripStatus) (int64, error) {
	var count int64
	for _, trip := range r.trips {
		if trip.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeTripRepo) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	for _, trip := range r.trips {
		if trip.Status == models.TripStatusPending && trip.ScheduledStartTime.After(after) {
			count++
		}
	}
	return count, nil
}

type fakeFuelRepo struct {
	records map[primitive.ObjectID]*models.FuelRecord
}

func newFakeFuelRepo() *fakeFuelRepo {
	return &fakeFuelRepo{records: make(map[primitive.ObjectID]*models.FuelRecord)}
}

func (r *fakeFuelRepo) Create(ctx context.Context, record *models.FuelRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *fakeFuelRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FuelRecord, error) {
	stored, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("fuel record %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeFuelRepo) Update(ctx context.Context, record *models.FuelRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return fmt.Errorf("fuel record %s: %w", record.ID.Hex(), utils.ErrNotFound)
	}
	record.UpdatedAt = time.Now()
	updated := *record
	r.records[record.ID] = &updated
	return nil
}

func (r *fakeFuelRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("fuel record %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(r.records, id)
	return nil
}

func (r *fakeFuelRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.records[id]
	return ok, nil
}

func (r *fakeFuelRepo) List(ctx context.Context, filter models.FuelRecordFilter) ([]*models.FuelRecord, error) {
	var records []*models.FuelRecord
	for _, record := range r.records {
		if filter.Matches(record) {
			copy := *record
			records = append(records, &copy)
		}
	}
	return records, nil
}

func (r *fakeFuelRepo) ListWithOdometerBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.FuelRecord, error) {
	var records []*models.FuelRecord
	for _, record := range r.records {
		if record.OdometerReadingKm == nil {
			continue
		}
		if !dateRange.Contains(record.Date) {
			continue
		}
		if !vehicleID.IsZero() && record.VehicleID != vehicleID {
			continue
		}
		copy := *record
		records = append(records, &copy)
	}
	return records, nil
}

func (r *fakeFuelRepo) ListSince(ctx context.Context, since time.Time) ([]*models.FuelRecord, error) {
	var records []*models.FuelRecord
	for _, record := range r.records {
		if record.Date.Before(since) {
			continue
		}
		copy := *record
		records = append(records, &copy)
	}
	return records, nil
}

func (r *fakeFuelRepo) DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	for id, record := range r.records {
		if record.VehicleID == vehicleID {
			delete(r.records, id)
		}
	}
	return nil
}

type fakeMaintenanceRepo struct {
	records map[primitive.ObjectID]*models.Maintenance
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{records: make(map[primitive.ObjectID]*models.Maintenance)}
}

func (r *fakeMaintenanceRepo) Create(ctx context.Context, maintenance *models.Maintenance) error {
	if maintenance.ID.IsZero() {
		maintenance.ID = primitive.NewObjectID()
	}
	if maintenance.Status == "" {
		maintenance.Status = models.MaintenanceStatusScheduled
	}
	now := time.Now()
	maintenance.CreatedAt = now
	maintenance.UpdatedAt = now
	maintenance.Version = 1
	stored := *maintenance
	r.records[maintenance.ID] = &stored
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Maintenance, error) {
	stored, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("maintenance record %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeMaintenanceRepo) Update(ctx context.Context, maintenance *models.Maintenance) error {
	stored, ok := r.records[maintenance.ID]
	if !ok {
		return fmt.Errorf("maintenance record %s: %w", maintenance.ID.Hex(), utils.ErrNotFound)
	}
	if stored.Version != maintenance.Version {
		return fmt.Errorf("maintenance record %s: %w", maintenance.ID.Hex(), utils.ErrConcurrencyConflict)
	}
	maintenance.Version++
	maintenance.UpdatedAt = time.Now()
	updated := *maintenance
	r.records[maintenance.ID] = &updated
	return nil
}

func (r *fakeMaintenanceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("maintenance record %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(r.records, id)
	return nil
}

func (r *fakeMaintenanceRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.records[id]
	return ok, nil
}

func (r *fakeMaintenanceRepo) List(ctx context.Context, filter models.MaintenanceFilter) ([]*models.Maintenance, error) {
	var records []*models.Maintenance
	for _, record := range r.records {
		if filter.Matches(record) {
			copy := *record
			records = append(records, &copy)
		}
	}
	return records, nil
}

func (r *fakeMaintenanceRepo) CountOutstandingByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.VehicleID == vehicleID && record.Status.IsOutstanding() {
			count++
		}
	}
	return count, nil
}

func (r *fakeMaintenanceRepo) ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Maintenance, error) {
	var records []*models.Maintenance
	for _, record := range r.records {
		if record.ActualCompletionDate == nil || record.Cost == nil {
			continue
		}
		if !dateRange.Contains(*record.ActualCompletionDate) {
			continue
		}
		if !vehicleID.IsZero() && record.VehicleID != vehicleID {
			continue
		}
		copy := *record
		records = append(records, &copy)
	}
	return records, nil
}

func (r *fakeMaintenanceRepo) ListScheduledBefore(ctx context.Context, cutoff time.Time) ([]*models.Maintenance, error) {
	var records []*models.Maintenance
	for _, record := range r.records {
		if record.Status != models.MaintenanceStatusScheduled {
			continue
		}
		if !record.ScheduledDate.Before(cutoff) {
			continue
		}
		copy := *record
		records = append(records, &copy)
	}
	return records, nil
}

func (r *fakeMaintenanceRepo) CountByStatus(ctx context.Context, status models.MaintenanceStatus) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeMaintenanceRepo) DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	for id, record := range r.records {
		if record.VehicleID == vehicleID {
			delete(r.records, id)
		}
	}
	return nil
}

type fakeReportRepo struct {
	reports map[primitive.ObjectID]*models.PerformanceReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[primitive.ObjectID]*models.PerformanceReport)}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *models.PerformanceReport) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	stored := *report
	r.reports[report.ID] = &stored
	return nil
}

func (r *fakeReportRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReport, error) {
	stored, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("performance report %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeReportRepo) List(ctx context.Context) ([]*models.PerformanceReport, error) {
	reports := make([]*models.PerformanceReport, 0, len(r.reports))
	for _, report := range r.reports {
		copy := *report
		reports = append(reports, &copy)
	}
	return reports, nil
}

func (r *fakeReportRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.reports[id]; !ok {
		return fmt.Errorf("performance report %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(r.reports, id)
	return nil
}

func (r *fakeReportRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.reports[id]
	return ok, nil
}

// Shared test actors.
var (
	adminActor    = models.Actor{ID: "admin-1", Role: models.RoleAdministrator}
	operatorActor = models.Actor{ID: "operator-1", Role: models.RoleOperator}
	driverActor   = models.Actor{ID: "driver-1", Role: models.RoleDriver}
)
