package mongodb

import (
	"context"
	"fmt"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type performanceReportRepository struct {
	collection *mongo.Collection
}

func NewPerformanceReportRepository(db *mongo.Database) interfaces.PerformanceReportRepository {
	return &performanceReportRepository{
		collection: db.Collection("performance_reports"),
	}
}

func (r *performanceReportRepository) Create(ctx context.Context, report *models.PerformanceReport) error {
	report.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to create performance report: %w", err)
	}

	return nil
}

func (r *performanceReportRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReport, error) {
	var report models.PerformanceReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("performance report %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get performance report: %w", err)
	}

	return &report, nil
}

func (r *performanceReportRepository) List(ctx context.Context) ([]*models.PerformanceReport, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "generated_on", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []*models.PerformanceReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode performance reports: %w", err)
	}

	return reports, nil
}

func (r *performanceReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete performance report: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("performance report %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *performanceReportRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check performance report existence: %w", err)
	}
	return count > 0, nil
}
