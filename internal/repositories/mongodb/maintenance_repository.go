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

type maintenanceRepository struct {
	collection *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) interfaces.MaintenanceRepository {
	return &maintenanceRepository{
		collection: db.Collection("maintenance_records"),
	}
}

// Basic CRUD operations
func (r *maintenanceRepository) Create(ctx context.Context, maintenance *models.Maintenance) error {
	maintenance.ID = primitive.NewObjectID()
	maintenance.CreatedAt = time.Now()
	maintenance.UpdatedAt = time.Now()
	maintenance.Version = 1

	if maintenance.Status == "" {
		maintenance.Status = models.MaintenanceStatusScheduled
	}

	_, err := r.collection.InsertOne(ctx, maintenance)
	if err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&maintenance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("maintenance record %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}

	return &maintenance, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, maintenance *models.Maintenance) error {
	currentVersion := maintenance.Version
	maintenance.Version++
	maintenance.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": maintenance.ID, "version": currentVersion},
		maintenance,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance record: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": maintenance.ID})
		if err != nil {
			return fmt.Errorf("failed to classify missed maintenance write: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("maintenance record %s: %w", maintenance.ID.Hex(), utils.ErrNotFound)
		}
		return fmt.Errorf("maintenance record %s: %w", maintenance.ID.Hex(), utils.ErrConcurrencyConflict)
	}

	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete maintenance record: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("maintenance record %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *maintenanceRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check maintenance record existence: %w", err)
	}
	return count > 0, nil
}

// Filtered listing
func (r *maintenanceRepository) List(ctx context.Context, filter models.MaintenanceFilter) ([]*models.Maintenance, error) {
	query := bson.M{}

	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"description": regex},
			{"performed_by": regex},
		}
	}
	if filter.Status != "" && filter.Status != models.FilterAll {
		query["status"] = filter.Status
	}
	if !filter.VehicleID.IsZero() {
		query["vehicle_id"] = filter.VehicleID
	}
	if filter.MaintenanceType != "" && filter.MaintenanceType != models.FilterAll {
		query["maintenance_type"] = filter.MaintenanceType
	}
	if !filter.DateRange.IsZero() {
		dateQuery := bson.M{}
		if !filter.DateRange.Start.IsZero() {
			dateQuery["$gte"] = utils.StartOfDay(filter.DateRange.Start)
		}
		if !filter.DateRange.End.IsZero() {
			dateQuery["$lte"] = utils.EndOfDay(filter.DateRange.End)
		}
		query["scheduled_date"] = dateQuery
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.Maintenance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance records: %w", err)
	}

	return records, nil
}

// Reconciliation
func (r *maintenanceRepository) CountOutstandingByVehicle(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	query := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": models.OutstandingMaintenanceStatuses},
	}
	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count outstanding maintenance: %w", err)
	}
	return count, nil
}

// Reporting
func (r *maintenanceRepository) ListCompletedBetween(ctx context.Context, dateRange models.DateRange, vehicleID primitive.ObjectID) ([]*models.Maintenance, error) {
	query := bson.M{
		"actual_completion_date": bson.M{
			"$gte": utils.StartOfDay(dateRange.Start),
			"$lte": utils.EndOfDay(dateRange.End),
		},
		"cost": bson.M{"$ne": nil},
	}
	if !vehicleID.IsZero() {
		query["vehicle_id"] = vehicleID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed maintenance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.Maintenance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode completed maintenance: %w", err)
	}

	return records, nil
}

// Overdue marking
func (r *maintenanceRepository) ListScheduledBefore(ctx context.Context, cutoff time.Time) ([]*models.Maintenance, error) {
	query := bson.M{
		"status":         models.MaintenanceStatusScheduled,
		"scheduled_date": bson.M{"$lt": cutoff},
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.Maintenance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode overdue candidates: %w", err)
	}

	return records, nil
}

// Dashboard counters
func (r *maintenanceRepository) CountByStatus(ctx context.Context, status models.MaintenanceStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count maintenance by status: %w", err)
	}
	return count, nil
}

// Cascade used by vehicle deletion
func (r *maintenanceRepository) DeleteByVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return fmt.Errorf("failed to delete maintenance records for vehicle: %w", err)
	}
	return nil
}
