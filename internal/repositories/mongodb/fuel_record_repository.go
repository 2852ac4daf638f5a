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

type fuelRecordRepository struct {
	collection *mongo.Collection
}

func NewFuelRecordRepository(db *mongo.Database) interfaces.FuelRecordRepository {
	return &fuelRecordRepository{
		collection: db.Collection("fuel_records"),
	}
}

// Basic CRUD operations
func (r *fuelRecordRepository) Create(ctx context.Context, record *models.FuelRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create fuel record: %w", err)
	}

	return nil
}

func (r *fuelRecordRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FuelRecord, error) {
	var record models.FuelRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("fuel record %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get fuel record: %w", err)
	}

	return &record, nil
}

func (r *fuelRecordRepository) Update(ctx context.Context, record *models.FuelRecord) error {
	record.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return fmt.Errorf("failed to update fuel record: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("fuel record %s: %w", record.ID.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *fuelRecordRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete fuel record: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("fuel record %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *fuelRecordRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check fuel record existence: %w", err)
	}
	return count > 0, nil
}

// Filtered listing
func (r *fuelRecordRepository) List(ctx context.Context, filter models.FuelRecordFilter) ([]*models.FuelRecord, error) {
	query := bson.M{}

	if filter.Search != "" {
		query["location"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if !filter.VehicleID.IsZero() {
		query["vehicle_id"] = filter.VehicleID
	}
	if filter.DriverID != "" && filter.DriverID != models.FilterAll {
		query["driver_id"] = filter.DriverID
	}
	if !filter.DateRange.IsZero() {
		dateQuery := bson.M{}
		if !filter.DateRange.Start.IsZero() {
			dateQuery["$gte"] = utils.StartOfDay(filter.DateRange.Start)
		}
		if !filter.DateRange.End.IsZero() {
			dateQuery["$lte"] = utils.EndOfDay(filter.DateRange.End)
		}
		query["date"] = dateQuery
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.FuelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode fuel records: %w", err)
	}

	return records, nil
}

// Reporting
func (r *fuelRecordRepository) ListWithOdometerBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.FuelRecord, error) {
	query := bson.M{
		"date": bson.M{
			"$gte": utils.StartOfDay(dateRange.Start),
			"$lte": utils.EndOfDay(dateRange.End),
		},
		"odometer_reading_km": bson.M{"$ne": nil},
	}
	if !vehicleID.IsZero() {
		query["vehicle_id"] = vehicleID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel records for report: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.FuelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode fuel records for report: %w", err)
	}

	return records, nil
}

// Dashboard
func (r *fuelRecordRepository) ListSince(ctx context.Context, since time.Time) ([]*models.FuelRecord, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"date": bson.M{"$gte": since}},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent fuel records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.FuelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode recent fuel records: %w", err)
	}

	return records, nil
}

// Cascade used by vehicle deletion
func (r *fuelRecordRepository) DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return fmt.Errorf("failed to delete fuel records for vehicle: %w", err)
	}
	return nil
}
