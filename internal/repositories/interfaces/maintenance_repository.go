package interfaces

import (
	"context"
	"time"

	"fleetops/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceRepository interface {
	// Basic CRUD operations. Update performs an optimistic-concurrency check
	// against the record's version.
	Create(ctx context.Context, maintenance *models.Maintenance) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Maintenance, error)
	Update(ctx context.Context, maintenance *models.Maintenance) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Filtered listing
	List(ctx context.Context, filter models.MaintenanceFilter) ([]*models.Maintenance, error)

	// Reconciliation
	CountOutstandingByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error)

	// Reporting. ListCompletedBetween returns records whose actual completion
	// date falls inside the range and that carry a cost, optionally restricted
	// to one vehicle (zero id means all vehicles).
	ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Maintenance, error)

	// Overdue marking. ListScheduledBefore returns records still in the
	// scheduled status whose scheduled date is before the cutoff.
	ListScheduledBefore(ctx context.Context, cutoff time.Time) ([]*models.Maintenance, error)

	// Dashboard counters
	CountByStatus(ctx context.Context, status models.MaintenanceStatus) (int64, error)

	// Cascade used by vehicle deletion
	DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error
}
