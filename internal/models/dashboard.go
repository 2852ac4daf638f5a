package models

import "time"

// ChartPoint is a label/value pair ready for chart rendering.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DailyFuelConsumption is one day's total fuel quantity for the trailing
// consumption chart.
type DailyFuelConsumption struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// DashboardSummary aggregates the fleet-wide counters and chart series shown
// on the landing dashboard.
type DashboardSummary struct {
	TotalVehicles         int64                  `json:"total_vehicles"`
	AvailableVehicles     int64                  `json:"available_vehicles"`
	VehiclesInMaintenance int64                  `json:"vehicles_in_maintenance"`
	UnavailableVehicles   int64                  `json:"unavailable_vehicles"`
	TotalTrips            int64                  `json:"total_trips"`
	UpcomingTrips         int64                  `json:"upcoming_trips"`
	TripsInProgress       int64                  `json:"trips_in_progress"`
	CompletedTrips        int64                  `json:"completed_trips"`
	PendingMaintenance    int64                  `json:"pending_maintenance"`
	OverdueMaintenance    int64                  `json:"overdue_maintenance"`
	FuelCostLast30Days    float64                `json:"fuel_cost_last_30_days"`
	VehicleStatusCounts   []ChartPoint           `json:"vehicle_status_counts"`
	TripStatusCounts      []ChartPoint           `json:"trip_status_counts"`
	MaintenanceCostByType []ChartPoint           `json:"maintenance_cost_by_type"`
	FuelConsumption7Days  []DailyFuelConsumption `json:"fuel_consumption_7_days"`
	GeneratedAt           time.Time              `json:"generated_at"`
}
