package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	ReportTypeFuelEfficiency     ReportType = "fuel_efficiency"
	ReportTypeVehicleUtilization ReportType = "vehicle_utilization"
	ReportTypeMaintenanceCost    ReportType = "maintenance_cost"
)

var reportTypeLabels = map[ReportType]string{
	ReportTypeFuelEfficiency:     "Fuel Efficiency Report",
	ReportTypeVehicleUtilization: "Vehicle Utilization Report",
	ReportTypeMaintenanceCost:    "Maintenance Cost Report",
}

func (t ReportType) Label() string {
	if label, ok := reportTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// PerformanceReport is an immutable aggregation snapshot. It is created by the
// reporting engine, read back as-is, and only ever deleted; there is no update
// path anywhere in the codebase.
type PerformanceReport struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReportType        ReportType         `json:"report_type" bson:"report_type"`
	GeneratedOn       time.Time          `json:"generated_on" bson:"generated_on"`
	Data              string             `json:"data" bson:"data"`
	ParametersUsed    string             `json:"parameters_used" bson:"parameters_used"`
	GeneratedByUserID string             `json:"generated_by_user_id" bson:"generated_by_user_id"`
}

// FuelEfficiencyRow is one per-vehicle group in a fuel efficiency report payload.
type FuelEfficiencyRow struct {
	Vehicle             string  `json:"vehicle"`
	TotalFuelQuantity   float64 `json:"total_fuel_quantity"`
	TotalCost           float64 `json:"total_cost"`
	AverageCostPerLiter float64 `json:"average_cost_per_liter"`
}

// UtilizationRow is one per-vehicle group in a vehicle utilization report payload.
type UtilizationRow struct {
	Vehicle                string  `json:"vehicle"`
	TotalTrips             int     `json:"total_trips"`
	TotalActualDistanceKm  float64 `json:"total_actual_distance_km"`
	TotalTripDurationHours float64 `json:"total_trip_duration_hours"`
}

// MaintenanceCostRow is one per-vehicle group in a maintenance cost report payload.
type MaintenanceCostRow struct {
	Vehicle              string  `json:"vehicle"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	MaintenanceEvents    int     `json:"maintenance_events"`
}
