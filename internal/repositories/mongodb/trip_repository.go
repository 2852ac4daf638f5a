package mongodb

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tripRepository struct {
	collection *mongo.Collection
}

func NewTripRepository(db *mongo.Database) interfaces.TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
	}
}

// Basic CRUD operations
func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	trip.Version = 1

	if trip.Status == "" {
		trip.Status = models.TripStatusPending
	}

	_, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

func (r *tripRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trip %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *models.Trip) error {
	currentVersion := trip.Version
	trip.Version++
	trip.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": trip.ID, "version": currentVersion},
		trip,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": trip.ID})
		if err != nil {
			return fmt.Errorf("failed to classify missed trip write: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("trip %s: %w", trip.ID.Hex(), utils.ErrNotFound)
		}
		return fmt.Errorf("trip %s: %w", trip.ID.Hex(), utils.ErrConcurrencyConflict)
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *tripRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check trip existence: %w", err)
	}
	return count > 0, nil
}

// Filtered listing
func (r *tripRepository) List(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	query := bson.M{}

	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"start_location": regex},
			{"end_location": regex},
			{"route_details": regex},
		}
	}
	if filter.Status != "" && filter.Status != models.FilterAll {
		query["status"] = filter.Status
	}
	if !filter.VehicleID.IsZero() {
		query["vehicle_id"] = filter.VehicleID
	}
	if filter.DriverID != "" && filter.DriverID != models.FilterAll {
		query["driver_id"] = filter.DriverID
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "scheduled_start_time", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return trips, nil
}

// Reporting
func (r *tripRepository) ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Trip, error) {
	query := bson.M{
		"scheduled_start_time": bson.M{
			"$gte": utils.StartOfDay(dateRange.Start),
			"$lte": utils.EndOfDay(dateRange.End),
		},
		"actual_end_time": bson.M{"$ne": nil},
	}
	if !vehicleID.IsZero() {
		query["vehicle_id"] = vehicleID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode completed trips: %w", err)
	}

	return trips, nil
}

// Referential integrity and dashboard counters
func (r *tripRepository) CountByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return 0, fmt.Errorf("failed to count trips by vehicle: %w", err)
	}
	return count, nil
}

func (r *tripRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

func (r *tripRepository) CountByStatus(ctx context.Context, status models.TripStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count trips by status: %w", err)
	}
	return count, nil
}

func (r *tripRepository) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	query := bson.M{
		"scheduled_start_time": bson.M{"$gt": after},
		"status":               models.TripStatusPending,
	}
	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming trips: %w", err)
	}
	return count, nil
}
