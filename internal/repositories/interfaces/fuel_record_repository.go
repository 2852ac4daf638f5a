package interfaces

import (
	"context"
	"time"

	"fleetops/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FuelRecordRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, record *models.FuelRecord) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.FuelRecord, error)
	Update(ctx context.Context, record *models.FuelRecord) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Filtered listing
	List(ctx context.Context, filter models.FuelRecordFilter) ([]*models.FuelRecord, error)

	// Reporting. ListWithOdometerBetween returns records dated inside the
	// range that carry an odometer reading, optionally restricted to one
	// vehicle (zero id means all vehicles).
	ListWithOdometerBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.FuelRecord, error)

	// Dashboard
	ListSince(ctx context.Context, since time.Time) ([]*models.FuelRecord, error)

	// Cascade used by vehicle deletion
	DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error
}
