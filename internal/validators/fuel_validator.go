package validators

import (
	"fleetops/internal/models"
)

func ValidateFuelRecord(record *models.FuelRecord) error {
	errs := ValidateStruct(record)

	if record.Date.IsZero() {
		errs = append(errs, ValidationError{
			Field:   "Date",
			Message: "Date is required",
		})
	}

	if record.FuelQuantity < 0 {
		errs = append(errs, ValidationError{
			Field:   "FuelQuantity",
			Message: "Fuel quantity cannot be negative",
		})
	}
	if record.Cost < 0 {
		errs = append(errs, ValidationError{
			Field:   "Cost",
			Message: "Cost cannot be negative",
		})
	}
	if record.OdometerReadingKm != nil && *record.OdometerReadingKm < 0 {
		errs = append(errs, ValidationError{
			Field:   "OdometerReadingKm",
			Message: "Odometer reading cannot be negative",
		})
	}

	return asError(errs)
}
