package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
	}
}

// Basic CRUD operations
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()
	vehicle.Version = 1

	// Registration numbers are stored uppercase; the unique index relies on it
	vehicle.RegistrationNumber = strings.ToUpper(vehicle.RegistrationNumber)

	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusActive
	}

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	currentVersion := vehicle.Version
	vehicle.Version++
	vehicle.UpdatedAt = time.Now()
	vehicle.RegistrationNumber = strings.ToUpper(vehicle.RegistrationNumber)

	result, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": vehicle.ID, "version": currentVersion},
		vehicle,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if result.MatchedCount == 0 {
		return r.classifyMissedWrite(ctx, vehicle.ID)
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *vehicleRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check vehicle existence: %w", err)
	}
	return count > 0, nil
}

// Identification
func (r *vehicleRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	filter := bson.M{"registration_number": strings.ToUpper(registrationNumber)}
	err := r.collection.FindOne(ctx, filter).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle %s: %w", registrationNumber, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by registration number: %w", err)
	}

	return &vehicle, nil
}

// Status operations
func (r *vehicleRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{"status": status, "updated_at": time.Now()},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *vehicleRepository) RaiseOdometer(ctx context.Context, id primitive.ObjectID, odometerKm float64) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$max": bson.M{"current_odometer_km": odometerKm},
			"$set": bson.M{"updated_at": time.Now()},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to raise vehicle odometer: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

// Listing and analytics
func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "registration_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

func (r *vehicleRepository) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles by status: %w", err)
	}
	return count, nil
}

// classifyMissedWrite distinguishes a stale version from a missing document
// after a conditional write matched nothing.
func (r *vehicleRepository) classifyMissedWrite(ctx context.Context, id primitive.ObjectID) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to classify missed vehicle write: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return fmt.Errorf("vehicle %s: %w", id.Hex(), utils.ErrConcurrencyConflict)
}
