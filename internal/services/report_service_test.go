package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/utils"
	"fleetops/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reportServiceFixture struct {
	reportRepo      *fakeReportRepo
	fuelRepo        *fakeFuelRepo
	tripRepo        *fakeTripRepo
	maintenanceRepo *fakeMaintenanceRepo
	vehicleRepo     *fakeVehicleRepo
	service         ReportService

	truckA *models.Vehicle
	truckB *models.Vehicle
}

func newReportServiceFixture(t *testing.T) *reportServiceFixture {
	t.Helper()

	f := &reportServiceFixture{
		reportRepo:      newFakeReportRepo(),
		fuelRepo:        newFakeFuelRepo(),
		tripRepo:        newFakeTripRepo(),
		maintenanceRepo: newFakeMaintenanceRepo(),
		vehicleRepo:     newFakeVehicleRepo(),
	}
	f.service = NewReportService(f.reportRepo, f.fuelRepo, f.tripRepo, f.maintenanceRepo, f.vehicleRepo, logger.NewNop())

	ctx := context.Background()
	f.truckA = &models.Vehicle{RegistrationNumber: "TRUCK-A"}
	f.truckB = &models.Vehicle{RegistrationNumber: "TRUCK-B"}
	require.NoError(t, f.vehicleRepo.Create(ctx, f.truckA))
	require.NoError(t, f.vehicleRepo.Create(ctx, f.truckB))

	return f
}

func ptr[T any](v T) *T { return &v }

var reportRange = models.DateRange{
	Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
}

func (f *reportServiceFixture) seedFuel(t *testing.T, vehicleID primitive.ObjectID, date time.Time, quantity, cost float64, odometer *float64) {
	t.Helper()
	require.NoError(t, f.fuelRepo.Create(context.Background(), &models.FuelRecord{
		VehicleID:         vehicleID,
		Date:              date,
		FuelQuantity:      quantity,
		Cost:              cost,
		OdometerReadingKm: odometer,
	}))
}

func TestGenerateFuelEfficiency(t *testing.T) {
	ctx := context.Background()

	t.Run("groups by registration and averages cost", func(t *testing.T) {
		f := newReportServiceFixture(t)
		inRange := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

		f.seedFuel(t, f.truckA.ID, inRange, 40, 80, ptr(10000.0))
		f.seedFuel(t, f.truckA.ID, inRange.AddDate(0, 0, 2), 60, 100, ptr(10500.0))
		f.seedFuel(t, f.truckB.ID, inRange, 50, 75, ptr(20000.0))
		// Outside the range and without an odometer reading: both excluded.
		f.seedFuel(t, f.truckA.ID, inRange.AddDate(0, 2, 0), 30, 60, ptr(11000.0))
		f.seedFuel(t, f.truckA.ID, inRange, 30, 60, nil)

		report, err := f.service.GenerateFuelEfficiency(ctx, adminActor, reportRange, primitive.NilObjectID)
		require.NoError(t, err)

		var rows []models.FuelEfficiencyRow
		require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
		require.Len(t, rows, 2)

		assert.Equal(t, "TRUCK-A", rows[0].Vehicle)
		assert.InDelta(t, 100, rows[0].TotalFuelQuantity, 1e-9)
		assert.InDelta(t, 180, rows[0].TotalCost, 1e-9)
		assert.InDelta(t, 1.8, rows[0].AverageCostPerLiter, 1e-9)

		assert.Equal(t, "TRUCK-B", rows[1].Vehicle)
		assert.InDelta(t, 1.5, rows[1].AverageCostPerLiter, 1e-9)
	})

	t.Run("zero quantity group averages to zero", func(t *testing.T) {
		f := newReportServiceFixture(t)
		f.seedFuel(t, f.truckA.ID, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 0, 45, ptr(9000.0))

		report, err := f.service.GenerateFuelEfficiency(ctx, adminActor, reportRange, primitive.NilObjectID)
		require.NoError(t, err)

		var rows []models.FuelEfficiencyRow
		require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
		require.Len(t, rows, 1)
		assert.Zero(t, rows[0].AverageCostPerLiter)
	})

	t.Run("unresolvable vehicle is grouped under unknown", func(t *testing.T) {
		f := newReportServiceFixture(t)
		f.seedFuel(t, primitive.NewObjectID(), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 10, 20, ptr(100.0))

		report, err := f.service.GenerateFuelEfficiency(ctx, adminActor, reportRange, primitive.NilObjectID)
		require.NoError(t, err)

		var rows []models.FuelEfficiencyRow
		require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Unknown Vehicle", rows[0].Vehicle)
	})

	t.Run("single vehicle restriction", func(t *testing.T) {
		f := newReportServiceFixture(t)
		date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		f.seedFuel(t, f.truckA.ID, date, 40, 80, ptr(10000.0))
		f.seedFuel(t, f.truckB.ID, date, 50, 75, ptr(20000.0))

		report, err := f.service.GenerateFuelEfficiency(ctx, adminActor, reportRange, f.truckB.ID)
		require.NoError(t, err)

		var rows []models.FuelEfficiencyRow
		require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "TRUCK-B", rows[0].Vehicle)
		assert.Contains(t, report.ParametersUsed, "For Vehicle: TRUCK-B")
	})
}

func TestGenerateVehicleUtilization(t *testing.T) {
	ctx := context.Background()

	f := newReportServiceFixture(t)
	scheduled := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 12, 8, 10, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	completed := &models.Trip{
		VehicleID:          f.truckA.ID,
		StartLocation:      "A",
		EndLocation:        "B",
		ScheduledStartTime: scheduled,
		ScheduledEndTime:   scheduled.Add(4 * time.Hour),
		Status:             models.TripStatusCompleted,
		ActualStartTime:    &start,
		ActualEndTime:      &end,
		ActualDistanceKm:   ptr(120.5),
	}
	require.NoError(t, f.tripRepo.Create(ctx, completed))

	// Ended without a recorded start: counted, zero duration.
	endOnly := &models.Trip{
		VehicleID:          f.truckA.ID,
		StartLocation:      "B",
		EndLocation:        "C",
		ScheduledStartTime: scheduled.AddDate(0, 0, 1),
		ScheduledEndTime:   scheduled.AddDate(0, 0, 1).Add(time.Hour),
		Status:             models.TripStatusCompleted,
		ActualEndTime:      &end,
	}
	require.NoError(t, f.tripRepo.Create(ctx, endOnly))

	// Still running: no actual end, excluded entirely.
	running := &models.Trip{
		VehicleID:          f.truckA.ID,
		StartLocation:      "C",
		EndLocation:        "D",
		ScheduledStartTime: scheduled,
		ScheduledEndTime:   scheduled.Add(time.Hour),
		Status:             models.TripStatusInProgress,
		ActualStartTime:    &start,
	}
	require.NoError(t, f.tripRepo.Create(ctx, running))

	report, err := f.service.GenerateVehicleUtilization(ctx, adminActor, reportRange, primitive.NilObjectID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportTypeVehicleUtilization, report.ReportType)

	var rows []models.UtilizationRow
	require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
	require.Len(t, rows, 1)

	assert.Equal(t, "TRUCK-A", rows[0].Vehicle)
	assert.Equal(t, 2, rows[0].TotalTrips)
	assert.InDelta(t, 120.5, rows[0].TotalActualDistanceKm, 1e-9)
	assert.InDelta(t, 3, rows[0].TotalTripDurationHours, 1e-9)
}

func TestGenerateMaintenanceCost(t *testing.T) {
	ctx := context.Background()

	f := newReportServiceFixture(t)
	completion := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	seed := func(vehicleID primitive.ObjectID, status models.MaintenanceStatus, completedOn *time.Time, cost *float64) {
		require.NoError(t, f.maintenanceRepo.Create(ctx, &models.Maintenance{
			VehicleID:            vehicleID,
			Description:          "Service",
			ScheduledDate:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:               status,
			ActualCompletionDate: completedOn,
			Cost:                 cost,
		}))
	}

	seed(f.truckA.ID, models.MaintenanceStatusCompleted, &completion, ptr(300.0))
	seed(f.truckA.ID, models.MaintenanceStatusCompleted, &completion, ptr(150.0))
	// No completion date or no cost: excluded.
	seed(f.truckA.ID, models.MaintenanceStatusScheduled, nil, ptr(999.0))
	seed(f.truckB.ID, models.MaintenanceStatusCompleted, &completion, nil)

	report, err := f.service.GenerateMaintenanceCost(ctx, adminActor, reportRange, primitive.NilObjectID)
	require.NoError(t, err)

	var rows []models.MaintenanceCostRow
	require.NoError(t, json.Unmarshal([]byte(report.Data), &rows))
	require.Len(t, rows, 1)

	assert.Equal(t, "TRUCK-A", rows[0].Vehicle)
	assert.InDelta(t, 450, rows[0].TotalMaintenanceCost, 1e-9)
	assert.Equal(t, 2, rows[0].MaintenanceEvents)
}

func TestReportGenerationGate(t *testing.T) {
	ctx := context.Background()
	f := newReportServiceFixture(t)

	t.Run("inverted range is rejected before any query", func(t *testing.T) {
		inverted := models.DateRange{Start: reportRange.End, End: reportRange.Start}
		_, err := f.service.GenerateFuelEfficiency(ctx, adminActor, inverted, primitive.NilObjectID)
		assert.ErrorIs(t, err, utils.ErrInvalidRange)
	})

	t.Run("same day bounds with differing times pass", func(t *testing.T) {
		sameDay := models.DateRange{
			Start: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
		}
		_, err := f.service.GenerateFuelEfficiency(ctx, adminActor, sameDay, primitive.NilObjectID)
		assert.NoError(t, err)
	})

	t.Run("operator may not generate", func(t *testing.T) {
		_, err := f.service.GenerateVehicleUtilization(ctx, operatorActor, reportRange, primitive.NilObjectID)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("driver may not generate", func(t *testing.T) {
		_, err := f.service.GenerateMaintenanceCost(ctx, driverActor, reportRange, primitive.NilObjectID)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}

func TestReportPersistence(t *testing.T) {
	ctx := context.Background()
	f := newReportServiceFixture(t)

	report, err := f.service.GenerateFuelEfficiency(ctx, adminActor, reportRange, primitive.NilObjectID)
	require.NoError(t, err)

	assert.False(t, report.ID.IsZero())
	assert.Equal(t, models.ReportTypeFuelEfficiency, report.ReportType)
	assert.Equal(t, adminActor.ID, report.GeneratedByUserID)
	assert.Equal(t, "From: 2026-01-01 To: 2026-01-31", report.ParametersUsed)
	assert.False(t, report.GeneratedOn.IsZero())

	stored, err := f.service.Get(ctx, operatorActor, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Data, stored.Data)

	reports, err := f.service.List(ctx, operatorActor)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	// Deletion is the only mutation reports support, and it is admin-only.
	assert.ErrorIs(t, f.service.Delete(ctx, operatorActor, report.ID), utils.ErrForbidden)
	require.NoError(t, f.service.Delete(ctx, adminActor, report.ID))

	_, err = f.service.Get(ctx, adminActor, report.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
