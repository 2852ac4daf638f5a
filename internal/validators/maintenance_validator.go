package validators

import (
	"fmt"

	"fleetops/internal/models"
)

func ValidateMaintenance(maintenance *models.Maintenance) error {
	errs := ValidateStruct(maintenance)

	if maintenance.ScheduledDate.IsZero() {
		errs = append(errs, ValidationError{
			Field:   "ScheduledDate",
			Message: "ScheduledDate is required",
		})
	}

	if maintenance.Status != "" && !maintenance.Status.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "Status",
			Message: fmt.Sprintf("Unknown maintenance status %q", maintenance.Status),
		})
	}

	if maintenance.Status == models.MaintenanceStatusCompleted && maintenance.ActualCompletionDate == nil {
		errs = append(errs, ValidationError{
			Field:   "ActualCompletionDate",
			Message: "Completed maintenance needs a completion date",
		})
	}

	if maintenance.Cost != nil && *maintenance.Cost < 0 {
		errs = append(errs, ValidationError{
			Field:   "Cost",
			Message: "Cost cannot be negative",
		})
	}
	if maintenance.OdometerReadingKm != nil && *maintenance.OdometerReadingKm < 0 {
		errs = append(errs, ValidationError{
			Field:   "OdometerReadingKm",
			Message: "Odometer reading cannot be negative",
		})
	}

	return asError(errs)
}
