package interfaces

import (
	"context"

	"fleetops/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Identification
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error)

	// Status operations. UpdateStatus is used by the reconciler and bumps the
	// version like any other write.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error

	// RaiseOdometer lifts the stored odometer to the given reading when the
	// reading is higher; lower readings leave it untouched.
	RaiseOdometer(ctx context.Context, id primitive.ObjectID, odometerKm float64) error

	// Listing and analytics
	List(ctx context.Context) ([]*models.Vehicle, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
}
