package services

import (
	"context"
	"testing"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/utils"
	"fleetops/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fuelServiceFixture struct {
	fuelRepo    *fakeFuelRepo
	vehicleRepo *fakeVehicleRepo
	service     FuelService
	vehicle     *models.Vehicle
}

func newFuelServiceFixture(t *testing.T) *fuelServiceFixture {
	t.Helper()

	f := &fuelServiceFixture{
		fuelRepo:    newFakeFuelRepo(),
		vehicleRepo: newFakeVehicleRepo(),
	}
	f.service = NewFuelService(f.fuelRepo, f.vehicleRepo, logger.NewNop())

	f.vehicle = &models.Vehicle{RegistrationNumber: "GJ-18-GH-2222", CurrentOdometerKm: 30000}
	require.NoError(t, f.vehicleRepo.Create(context.Background(), f.vehicle))
	return f
}

func (f *fuelServiceFixture) newRecord(driverID string) *models.FuelRecord {
	return &models.FuelRecord{
		VehicleID:    f.vehicle.ID,
		DriverID:     driverID,
		Date:         time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
		FuelQuantity: 45,
		Cost:         90,
		Location:     "Highway Fuel Stop",
	}
}

func TestFuelServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("driver files own record", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		created, err := f.service.Create(ctx, driverActor, f.newRecord(driverActor.ID))
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
	})

	t.Run("driver may not file for another driver", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		_, err := f.service.Create(ctx, driverActor, f.newRecord("driver-2"))
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("odometer reading raises the vehicle odometer", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		record := f.newRecord("driver-1")
		record.OdometerReadingKm = ptr(31250.0)

		_, err := f.service.Create(ctx, operatorActor, record)
		require.NoError(t, err)

		stored, err := f.vehicleRepo.GetByID(ctx, f.vehicle.ID)
		require.NoError(t, err)
		assert.InDelta(t, 31250, stored.CurrentOdometerKm, 1e-9)
	})

	t.Run("lower odometer reading is ignored", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		record := f.newRecord("driver-1")
		record.OdometerReadingKm = ptr(29000.0)

		_, err := f.service.Create(ctx, operatorActor, record)
		require.NoError(t, err)

		stored, err := f.vehicleRepo.GetByID(ctx, f.vehicle.ID)
		require.NoError(t, err)
		assert.InDelta(t, 30000, stored.CurrentOdometerKm, 1e-9)
	})

	t.Run("rejects unknown vehicle", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		record := f.newRecord("driver-1")
		record.VehicleID = primitive.NewObjectID()

		_, err := f.service.Create(ctx, operatorActor, record)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("rejects negative odometer reading", func(t *testing.T) {
		f := newFuelServiceFixture(t)

		record := f.newRecord("driver-1")
		record.OdometerReadingKm = ptr(-1.0)

		_, err := f.service.Create(ctx, operatorActor, record)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})
}

func TestFuelServiceGet(t *testing.T) {
	ctx := context.Background()
	f := newFuelServiceFixture(t)

	record := f.newRecord("driver-2")
	require.NoError(t, f.fuelRepo.Create(ctx, record))

	_, err := f.service.Get(ctx, operatorActor, record.ID)
	assert.NoError(t, err)

	_, err = f.service.Get(ctx, driverActor, record.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestFuelServiceList(t *testing.T) {
	ctx := context.Background()
	f := newFuelServiceFixture(t)

	require.NoError(t, f.fuelRepo.Create(ctx, f.newRecord(driverActor.ID)))
	require.NoError(t, f.fuelRepo.Create(ctx, f.newRecord("driver-2")))

	records, err := f.service.List(ctx, driverActor, models.FuelRecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, driverActor.ID, records[0].DriverID)

	records, err = f.service.List(ctx, operatorActor, models.FuelRecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFuelServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFuelServiceFixture(t)

	record := f.newRecord("driver-1")
	require.NoError(t, f.fuelRepo.Create(ctx, record))

	edit := *record
	edit.Cost = 120
	updated, err := f.service.Update(ctx, operatorActor, &edit)
	require.NoError(t, err)
	assert.InDelta(t, 120, updated.Cost, 1e-9)

	_, err = f.service.Update(ctx, driverActor, &edit)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	assert.ErrorIs(t, f.service.Delete(ctx, operatorActor, record.ID), utils.ErrForbidden)
	require.NoError(t, f.service.Delete(ctx, adminActor, record.ID))
}

func TestFuelServiceUpdateRaisesOdometer(t *testing.T) {
	ctx := context.Background()
	f := newFuelServiceFixture(t)

	record := f.newRecord("driver-1")
	record.OdometerReadingKm = ptr(31000.0)
	_, err := f.service.Create(ctx, operatorActor, record)
	require.NoError(t, err)

	// Correcting the reading upward lifts the vehicle odometer with it.
	edit := *record
	edit.OdometerReadingKm = ptr(33000.0)
	_, err = f.service.Update(ctx, operatorActor, &edit)
	require.NoError(t, err)

	stored, err := f.vehicleRepo.GetByID(ctx, f.vehicle.ID)
	require.NoError(t, err)
	assert.InDelta(t, 33000, stored.CurrentOdometerKm, 1e-9)

	// A downward correction leaves the high-water mark alone.
	edit.OdometerReadingKm = ptr(32000.0)
	_, err = f.service.Update(ctx, operatorActor, &edit)
	require.NoError(t, err)

	stored, err = f.vehicleRepo.GetByID(ctx, f.vehicle.ID)
	require.NoError(t, err)
	assert.InDelta(t, 33000, stored.CurrentOdometerKm, 1e-9)
}
