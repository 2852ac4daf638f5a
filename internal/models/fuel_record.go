package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FuelRecord is a pure fact record. It carries no derived state of its own,
// but its odometer reading may raise the vehicle's current odometer.
type FuelRecord struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID         primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	DriverID          string             `json:"driver_id" bson:"driver_id"`
	Date              time.Time          `json:"date" bson:"date"`
	FuelQuantity      float64            `json:"fuel_quantity" bson:"fuel_quantity" validate:"required"`
	Cost              float64            `json:"cost" bson:"cost" validate:"required"`
	OdometerReadingKm *float64           `json:"odometer_reading_km" bson:"odometer_reading_km"`
	Location          string             `json:"location" bson:"location"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}
