package utils

import "errors"

// Error taxonomy surfaced by the service layer. Services wrap these with
// fmt.Errorf("...: %w", err); handlers unwrap with errors.Is to choose an
// HTTP status. Nothing below is retried automatically; on a concurrency
// conflict the caller re-fetches and resubmits.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidRange        = errors.New("start date cannot be after end date")
	ErrConcurrencyConflict = errors.New("concurrent update detected")
	ErrHasDependents       = errors.New("record is referenced by dependent records")
	ErrValidationFailed    = errors.New("validation failed")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConcurrencyConflict(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}
