package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterAll is the sentinel meaning "no filter" for string-valued filter
// fields. Empty strings and zero object ids mean the same thing.
const FilterAll = "All"

// DateRange is an inclusive range compared at date granularity; the time of
// day on either bound is ignored.
type DateRange struct {
	Start time.Time `json:"start" form:"start_date" time_format:"2006-01-02"`
	End   time.Time `json:"end" form:"end_date" time_format:"2006-01-02"`
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func (r DateRange) Contains(t time.Time) bool {
	day := truncateToDate(t)
	if !r.Start.IsZero() && day.Before(truncateToDate(r.Start)) {
		return false
	}
	if !r.End.IsZero() && day.After(truncateToDate(r.End)) {
		return false
	}
	return true
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func statusFilterActive(status string) bool {
	return status != "" && status != FilterAll
}

func driverFilterActive(driverID string) bool {
	return driverID != "" && driverID != FilterAll
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// TripFilter narrows trip listings. All fields compose conjunctively and the
// zero value matches everything.
type TripFilter struct {
	Search    string             `json:"search" form:"search"`
	Status    string             `json:"status" form:"status"`
	VehicleID primitive.ObjectID `json:"vehicle_id" form:"vehicle_id"`
	DriverID  string             `json:"driver_id" form:"driver_id"`
}

// WithDriver returns a copy of the filter pinned to one driver. Used to force
// driver-role callers onto their own trips.
func (f TripFilter) WithDriver(driverID string) TripFilter {
	f.DriverID = driverID
	return f
}

func (f TripFilter) Matches(t *Trip) bool {
	if f.Search != "" &&
		!containsFold(t.StartLocation, f.Search) &&
		!containsFold(t.EndLocation, f.Search) &&
		!containsFold(t.RouteDetails, f.Search) {
		return false
	}
	if statusFilterActive(f.Status) && string(t.Status) != f.Status {
		return false
	}
	if !f.VehicleID.IsZero() && t.VehicleID != f.VehicleID {
		return false
	}
	if driverFilterActive(f.DriverID) && t.DriverID != f.DriverID {
		return false
	}
	return true
}

// FuelRecordFilter narrows fuel record listings. The date range applies to the
// fueling date.
type FuelRecordFilter struct {
	Search    string             `json:"search" form:"search"`
	VehicleID primitive.ObjectID `json:"vehicle_id" form:"vehicle_id"`
	DriverID  string             `json:"driver_id" form:"driver_id"`
	DateRange DateRange          `json:"date_range"`
}

func (f FuelRecordFilter) WithDriver(driverID string) FuelRecordFilter {
	f.DriverID = driverID
	return f
}

func (f FuelRecordFilter) Matches(r *FuelRecord) bool {
	if f.Search != "" && !containsFold(r.Location, f.Search) {
		return false
	}
	if !f.VehicleID.IsZero() && r.VehicleID != f.VehicleID {
		return false
	}
	if driverFilterActive(f.DriverID) && r.DriverID != f.DriverID {
		return false
	}
	if !f.DateRange.IsZero() && !f.DateRange.Contains(r.Date) {
		return false
	}
	return true
}

// MaintenanceFilter narrows maintenance listings. The date range applies to
// the scheduled date.
type MaintenanceFilter struct {
	Search          string             `json:"search" form:"search"`
	Status          string             `json:"status" form:"status"`
	VehicleID       primitive.ObjectID `json:"vehicle_id" form:"vehicle_id"`
	MaintenanceType string             `json:"maintenance_type" form:"maintenance_type"`
	DateRange       DateRange          `json:"date_range"`
}

func (f MaintenanceFilter) Matches(m *Maintenance) bool {
	if f.Search != "" &&
		!containsFold(m.Description, f.Search) &&
		!containsFold(m.PerformedBy, f.Search) {
		return false
	}
	if statusFilterActive(f.Status) && string(m.Status) != f.Status {
		return false
	}
	if !f.VehicleID.IsZero() && m.VehicleID != f.VehicleID {
		return false
	}
	if f.MaintenanceType != "" && f.MaintenanceType != FilterAll && m.MaintenanceType != f.MaintenanceType {
		return false
	}
	if !f.DateRange.IsZero() && !f.DateRange.Contains(m.ScheduledDate) {
		return false
	}
	return true
}
