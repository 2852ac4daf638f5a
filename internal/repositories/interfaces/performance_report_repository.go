package interfaces

import (
	"context"

	"fleetops/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceReportRepository is deliberately narrow: reports are write-once,
// read-many, delete-only. There is no update method.
type PerformanceReportRepository interface {
	Create(ctx context.Context, report *models.PerformanceReport) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReport, error)
	List(ctx context.Context) ([]*models.PerformanceReport, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
