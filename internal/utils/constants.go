package utils

import "time"

// Application Constants
const (
	AppName    = "FleetOps"
	AppVersion = "1.0.0"

	// Default values
	DefaultTimeZone = "UTC"

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour

	// Dashboard
	DashboardCacheTTL        = 2 * time.Minute
	FuelCostWindowDays       = 30
	FuelConsumptionChartDays = 7

	// Date formats
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidToken        = "invalid token"
	ErrInvalidInput        = "invalid input"
	ErrInternalServer      = "internal server error"
	ErrUnauthorized        = "unauthorized"
	ErrForbiddenMsg        = "forbidden"
	ErrValidationFailedMsg = "validation failed"
	ErrVehicleNotFound     = "vehicle not found"
	ErrTripNotFound        = "trip not found"
	ErrVehicleInUse        = "vehicle has trips assigned and cannot be deleted"
	ErrConflictRetry       = "the record was modified by someone else, refresh and retry"
)

// Cache Keys
const (
	CacheDashboardKey    = "dashboard:summary"
	CacheRateLimitPrefix = "rate_limit:"
)
