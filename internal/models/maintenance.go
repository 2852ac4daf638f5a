package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusOverdue    MaintenanceStatus = "overdue"
	MaintenanceStatusDelayed    MaintenanceStatus = "delayed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

var maintenanceStatusLabels = map[MaintenanceStatus]string{
	MaintenanceStatusScheduled:  "Scheduled",
	MaintenanceStatusInProgress: "In Progress",
	MaintenanceStatusCompleted:  "Completed",
	MaintenanceStatusOverdue:    "Overdue",
	MaintenanceStatusDelayed:    "Delayed",
	MaintenanceStatusCancelled:  "Cancelled",
}

func (s MaintenanceStatus) Label() string {
	if label, ok := maintenanceStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s MaintenanceStatus) IsValid() bool {
	_, ok := maintenanceStatusLabels[s]
	return ok
}

// IsOutstanding reports whether the record still represents pending work.
// Any outstanding record forces its vehicle into the in-maintenance status.
func (s MaintenanceStatus) IsOutstanding() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusOverdue, MaintenanceStatusDelayed:
		return true
	}
	return false
}

// OutstandingMaintenanceStatuses lists the non-terminal statuses, in the order
// they are matched by repository queries.
var OutstandingMaintenanceStatuses = []MaintenanceStatus{
	MaintenanceStatusScheduled,
	MaintenanceStatusInProgress,
	MaintenanceStatusOverdue,
	MaintenanceStatusDelayed,
}

type Maintenance struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID            primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	Description          string             `json:"description" bson:"description" validate:"required"`
	ScheduledDate        time.Time          `json:"scheduled_date" bson:"scheduled_date"`
	Status               MaintenanceStatus  `json:"status" bson:"status" default:"scheduled"`
	ActualCompletionDate *time.Time         `json:"actual_completion_date" bson:"actual_completion_date"`
	Cost                 *float64           `json:"cost" bson:"cost"`
	OdometerReadingKm    *float64           `json:"odometer_reading_km" bson:"odometer_reading_km"`
	PerformedBy          string             `json:"performed_by" bson:"performed_by"`
	MaintenanceType      string             `json:"maintenance_type" bson:"maintenance_type"`
	Version              int64              `json:"version" bson:"version"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}
