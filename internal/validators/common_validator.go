package validators

import (
	"fmt"
	"regexp"
	"strings"

	"fleetops/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("registration_number", validateRegistrationNumber)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Unwrap lets callers match the whole slice against the validation sentinel
// with errors.Is.
func (v ValidationErrors) Unwrap() error {
	return utils.ErrValidationFailed
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "registration_number":
		return "Invalid registration number format"
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

var registrationNumberRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,19}$`)

func validateRegistrationNumber(fl validator.FieldLevel) bool {
	return registrationNumberRegex.MatchString(fl.Field().String())
}

// asError turns the collected errors into a plain error, nil when empty. A
// typed nil slice must not escape as a non-nil error.
func asError(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
