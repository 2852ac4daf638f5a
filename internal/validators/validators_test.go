package validators

import (
	"testing"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validVehicle() *models.Vehicle {
	return &models.Vehicle{
		RegistrationNumber: "KA-01-AB-1234",
		Capacity:           12000,
		ManufacturingYear:  2022,
	}
}

func TestValidateVehicle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateVehicle(validVehicle()))
	})

	t.Run("errors match the validation sentinel", func(t *testing.T) {
		vehicle := validVehicle()
		vehicle.RegistrationNumber = ""

		err := ValidateVehicle(vehicle)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})

	tests := []struct {
		name   string
		mutate func(*models.Vehicle)
	}{
		{"malformed registration number", func(v *models.Vehicle) { v.RegistrationNumber = "a" }},
		{"registration number with illegal characters", func(v *models.Vehicle) { v.RegistrationNumber = "KA_01!1234" }},
		{"negative capacity", func(v *models.Vehicle) { v.Capacity = -1 }},
		{"unknown status", func(v *models.Vehicle) { v.Status = "floating" }},
		{"manufacturing year too old", func(v *models.Vehicle) { v.ManufacturingYear = 1850 }},
		{"manufacturing year in the future", func(v *models.Vehicle) { v.ManufacturingYear = time.Now().Year() + 2 }},
		{"negative odometer", func(v *models.Vehicle) { v.CurrentOdometerKm = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := validVehicle()
			tt.mutate(vehicle)
			assert.Error(t, ValidateVehicle(vehicle))
		})
	}

	t.Run("empty status is allowed for the create default", func(t *testing.T) {
		vehicle := validVehicle()
		vehicle.Status = ""
		assert.NoError(t, ValidateVehicle(vehicle))
	})

	t.Run("zero manufacturing year is allowed", func(t *testing.T) {
		vehicle := validVehicle()
		vehicle.ManufacturingYear = 0
		assert.NoError(t, ValidateVehicle(vehicle))
	})
}

func validTrip() *models.Trip {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &models.Trip{
		VehicleID:          primitive.NewObjectID(),
		StartLocation:      "Depot",
		EndLocation:        "Harbor",
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(4 * time.Hour),
	}
}

func TestValidateTrip(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateTrip(validTrip()))
	})

	tests := []struct {
		name   string
		mutate func(*models.Trip)
	}{
		{"missing vehicle", func(tr *models.Trip) { tr.VehicleID = primitive.NilObjectID }},
		{"missing start location", func(tr *models.Trip) { tr.StartLocation = "" }},
		{"missing scheduled start", func(tr *models.Trip) { tr.ScheduledStartTime = time.Time{} }},
		{"missing scheduled end", func(tr *models.Trip) { tr.ScheduledEndTime = time.Time{} }},
		{"scheduled end before start", func(tr *models.Trip) {
			tr.ScheduledEndTime = tr.ScheduledStartTime.Add(-time.Minute)
		}},
		{"actual end before actual start", func(tr *models.Trip) {
			start := tr.ScheduledStartTime
			end := start.Add(-time.Hour)
			tr.ActualStartTime = &start
			tr.ActualEndTime = &end
		}},
		{"negative estimated distance", func(tr *models.Trip) { tr.EstimatedDistanceKm = -1 }},
		{"negative actual distance", func(tr *models.Trip) {
			d := -10.0
			tr.ActualDistanceKm = &d
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(trip)
			err := ValidateTrip(trip)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrValidationFailed)
		})
	}

	t.Run("actual timestamps may be partially present", func(t *testing.T) {
		trip := validTrip()
		start := trip.ScheduledStartTime
		trip.ActualStartTime = &start
		assert.NoError(t, ValidateTrip(trip))
	})
}

func validMaintenance() *models.Maintenance {
	return &models.Maintenance{
		VehicleID:     primitive.NewObjectID(),
		Description:   "Oil change",
		ScheduledDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateMaintenance(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateMaintenance(validMaintenance()))
	})

	t.Run("completed requires a completion date", func(t *testing.T) {
		record := validMaintenance()
		record.Status = models.MaintenanceStatusCompleted

		err := ValidateMaintenance(record)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)

		done := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
		record.ActualCompletionDate = &done
		assert.NoError(t, ValidateMaintenance(record))
	})

	tests := []struct {
		name   string
		mutate func(*models.Maintenance)
	}{
		{"missing description", func(m *models.Maintenance) { m.Description = "" }},
		{"missing scheduled date", func(m *models.Maintenance) { m.ScheduledDate = time.Time{} }},
		{"unknown status", func(m *models.Maintenance) { m.Status = "paused" }},
		{"negative cost", func(m *models.Maintenance) {
			cost := -50.0
			m.Cost = &cost
		}},
		{"negative odometer reading", func(m *models.Maintenance) {
			reading := -1.0
			m.OdometerReadingKm = &reading
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validMaintenance()
			tt.mutate(record)
			assert.Error(t, ValidateMaintenance(record))
		})
	}
}

func validFuelRecord() *models.FuelRecord {
	return &models.FuelRecord{
		VehicleID:    primitive.NewObjectID(),
		Date:         time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC),
		FuelQuantity: 45,
		Cost:         90,
	}
}

func TestValidateFuelRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateFuelRecord(validFuelRecord()))
	})

	tests := []struct {
		name   string
		mutate func(*models.FuelRecord)
	}{
		{"missing date", func(r *models.FuelRecord) { r.Date = time.Time{} }},
		{"negative quantity", func(r *models.FuelRecord) { r.FuelQuantity = -1 }},
		{"negative cost", func(r *models.FuelRecord) { r.Cost = -1 }},
		{"negative odometer reading", func(r *models.FuelRecord) {
			reading := -100.0
			r.OdometerReadingKm = &reading
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validFuelRecord()
			tt.mutate(record)
			err := ValidateFuelRecord(record)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrValidationFailed)
		})
	}
}
