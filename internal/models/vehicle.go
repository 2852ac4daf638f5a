package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string

const (
	VehicleStatusActive        VehicleStatus = "active"
	VehicleStatusInMaintenance VehicleStatus = "in_maintenance"
	VehicleStatusOutOfService  VehicleStatus = "out_of_service"
	VehicleStatusRetired       VehicleStatus = "retired"
)

var vehicleStatusLabels = map[VehicleStatus]string{
	VehicleStatusActive:        "Active",
	VehicleStatusInMaintenance: "In Maintenance",
	VehicleStatusOutOfService:  "Out of Service",
	VehicleStatusRetired:       "Retired",
}

func (s VehicleStatus) Label() string {
	if label, ok := vehicleStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s VehicleStatus) IsValid() bool {
	_, ok := vehicleStatusLabels[s]
	return ok
}

// Reconcilable reports whether the maintenance-driven reconciler may touch
// this status. Vehicles parked as out-of-service or retired keep that status
// until an administrator changes it by hand.
func (s VehicleStatus) Reconcilable() bool {
	return s == VehicleStatusActive || s == VehicleStatusInMaintenance
}

type Vehicle struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RegistrationNumber string             `json:"registration_number" bson:"registration_number" validate:"required,registration_number"`
	Capacity           float64            `json:"capacity" bson:"capacity"`
	Status             VehicleStatus      `json:"status" bson:"status" default:"active"`
	Make               string             `json:"make" bson:"make"`
	Model              string             `json:"model" bson:"model"`
	ManufacturingYear  int                `json:"manufacturing_year" bson:"manufacturing_year"`
	FuelType           string             `json:"fuel_type" bson:"fuel_type"`
	CurrentOdometerKm  float64            `json:"current_odometer_km" bson:"current_odometer_km"`
	LastServicedDate   *time.Time         `json:"last_serviced_date" bson:"last_serviced_date"`
	Version            int64              `json:"version" bson:"version"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
