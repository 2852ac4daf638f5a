package validators

import (
	"fleetops/internal/models"
)

// ValidateTrip checks a trip's scheduling and routing fields. Actual
// timestamps are derived through status updates and are checked for ordering
// only when both are present.
func ValidateTrip(trip *models.Trip) error {
	errs := ValidateStruct(trip)

	if trip.ScheduledStartTime.IsZero() {
		errs = append(errs, ValidationError{
			Field:   "ScheduledStartTime",
			Message: "ScheduledStartTime is required",
		})
	}
	if trip.ScheduledEndTime.IsZero() {
		errs = append(errs, ValidationError{
			Field:   "ScheduledEndTime",
			Message: "ScheduledEndTime is required",
		})
	}

	if !trip.ScheduledStartTime.IsZero() && !trip.ScheduledEndTime.IsZero() &&
		trip.ScheduledEndTime.Before(trip.ScheduledStartTime) {
		errs = append(errs, ValidationError{
			Field:   "ScheduledEndTime",
			Message: "Scheduled end cannot precede scheduled start",
		})
	}

	if trip.ActualStartTime != nil && trip.ActualEndTime != nil &&
		trip.ActualEndTime.Before(*trip.ActualStartTime) {
		errs = append(errs, ValidationError{
			Field:   "ActualEndTime",
			Message: "Actual end cannot precede actual start",
		})
	}

	if trip.EstimatedDistanceKm < 0 {
		errs = append(errs, ValidationError{
			Field:   "EstimatedDistanceKm",
			Message: "Estimated distance cannot be negative",
		})
	}
	if trip.ActualDistanceKm != nil && *trip.ActualDistanceKm < 0 {
		errs = append(errs, ValidationError{
			Field:   "ActualDistanceKm",
			Message: "Actual distance cannot be negative",
		})
	}

	return asError(errs)
}
