package validators

import (
	"fmt"
	"time"

	"fleetops/internal/models"
)

// ValidateVehicle checks a vehicle before it is written. The status check
// covers the default-on-create path where the status arrives empty.
func ValidateVehicle(vehicle *models.Vehicle) error {
	errs := ValidateStruct(vehicle)

	if vehicle.Capacity < 0 {
		errs = append(errs, ValidationError{
			Field:   "Capacity",
			Message: "Capacity cannot be negative",
		})
	}

	if vehicle.Status != "" && !vehicle.Status.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "Status",
			Message: fmt.Sprintf("Unknown vehicle status %q", vehicle.Status),
		})
	}

	if vehicle.ManufacturingYear != 0 {
		if vehicle.ManufacturingYear < 1900 || vehicle.ManufacturingYear > time.Now().Year()+1 {
			errs = append(errs, ValidationError{
				Field:   "ManufacturingYear",
				Message: "Manufacturing year is out of range",
			})
		}
	}

	if vehicle.CurrentOdometerKm < 0 {
		errs = append(errs, ValidationError{
			Field:   "CurrentOdometerKm",
			Message: "Odometer cannot be negative",
		})
	}

	return asError(errs)
}
