package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripStatus string

const (
	TripStatusPending    TripStatus = "pending"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusDelayed    TripStatus = "delayed"
	TripStatusCanceled   TripStatus = "canceled"
)

var tripStatusLabels = map[TripStatus]string{
	TripStatusPending:    "Pending",
	TripStatusInProgress: "In Progress",
	TripStatusCompleted:  "Completed",
	TripStatusDelayed:    "Delayed",
	TripStatusCanceled:   "Canceled",
}

func (s TripStatus) Label() string {
	if label, ok := tripStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s TripStatus) IsValid() bool {
	_, ok := tripStatusLabels[s]
	return ok
}

type Trip struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID          primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	DriverID           string             `json:"driver_id" bson:"driver_id"`
	StartLocation      string             `json:"start_location" bson:"start_location" validate:"required"`
	EndLocation        string             `json:"end_location" bson:"end_location" validate:"required"`
	ScheduledStartTime time.Time          `json:"scheduled_start_time" bson:"scheduled_start_time"`
	ScheduledEndTime   time.Time          `json:"scheduled_end_time" bson:"scheduled_end_time"`
	Status             TripStatus         `json:"status" bson:"status" default:"pending"`
	ActualStartTime    *time.Time         `json:"actual_start_time" bson:"actual_start_time"`
	ActualEndTime      *time.Time         `json:"actual_end_time" bson:"actual_end_time"`
	EstimatedDistanceKm float64           `json:"estimated_distance_km" bson:"estimated_distance_km"`
	ActualDistanceKm   *float64           `json:"actual_distance_km" bson:"actual_distance_km"`
	RouteDetails       string             `json:"route_details" bson:"route_details"`
	Version            int64              `json:"version" bson:"version"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// ActualDurationHours is the elapsed time between actual start and end.
// Trips missing either timestamp contribute zero to utilization totals.
func (t *Trip) ActualDurationHours() float64 {
	if t.ActualStartTime == nil || t.ActualEndTime == nil {
		return 0
	}
	return t.ActualEndTime.Sub(*t.ActualStartTime).Hours()
}
