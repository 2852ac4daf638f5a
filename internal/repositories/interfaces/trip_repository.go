package interfaces

import (
	"context"
	"time"

	"fleetops/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripRepository interface {
	// Basic CRUD operations. Update performs an optimistic-concurrency check
	// against the trip's version and returns ErrConcurrencyConflict on a
	// mismatch.
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Filtered listing
	List(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)

	// Reporting. ListCompletedBetween returns trips whose scheduled start
	// date falls inside the range and that have an actual end time, optionally
	// restricted to one vehicle (zero id means all vehicles).
	ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Trip, error)

	// Referential integrity and dashboard counters
	CountByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.TripStatus) (int64, error)
	CountScheduledAfter(ctx context.Context, after time.Time) (int64, error)
}
