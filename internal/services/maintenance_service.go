package services

import (
	"context"
	"fmt"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"
	"fleetops/internal/validators"
	"fleetops/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceService interface {
	Create(ctx context.Context, actor models.Actor, maintenance *models.Maintenance) (*models.Maintenance, error)
	Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Maintenance, error)
	List(ctx context.Context, actor models.Actor, filter models.MaintenanceFilter) ([]*models.Maintenance, error)
	Update(ctx context.Context, actor models.Actor, maintenance *models.Maintenance) (*models.Maintenance, error)
	Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error
}

type maintenanceService struct {
	maintenanceRepo interfaces.MaintenanceRepository
	vehicleRepo     interfaces.VehicleRepository
	reconciler      *StatusReconciler
	logger          *logger.Logger
}

func NewMaintenanceService(
	maintenanceRepo interfaces.MaintenanceRepository,
	vehicleRepo interfaces.VehicleRepository,
	reconciler *StatusReconciler,
	logger *logger.Logger,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		reconciler:      reconciler,
		logger:          logger,
	}
}

// Create records a maintenance event and reconciles the vehicle's status. A
// reconciliation failure surfaces to the caller even though the maintenance
// write itself has already been persisted.
func (s *maintenanceService) Create(ctx context.Context, actor models.Actor, maintenance *models.Maintenance) (*models.Maintenance, error) {
	if err := Authorize(actor, "", ActionManageFleet); err != nil {
		return nil, err
	}
	if err := validators.ValidateMaintenance(maintenance); err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.Exists(ctx, maintenance.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify maintenance vehicle: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vehicle %s: %w", maintenance.VehicleID.Hex(), utils.ErrNotFound)
	}

	if err := s.maintenanceRepo.Create(ctx, maintenance); err != nil {
		return nil, err
	}

	if err := s.applyOdometer(ctx, maintenance); err != nil {
		return nil, err
	}

	if err := s.reconciler.Reconcile(ctx, maintenance.VehicleID); err != nil {
		return nil, err
	}

	return maintenance, nil
}

func (s *maintenanceService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Maintenance, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) List(ctx context.Context, actor models.Actor, filter models.MaintenanceFilter) ([]*models.Maintenance, error) {
	return s.maintenanceRepo.List(ctx, filter)
}

func (s *maintenanceService) Update(ctx context.Context, actor models.Actor, maintenance *models.Maintenance) (*models.Maintenance, error) {
	if err := Authorize(actor, "", ActionManageFleet); err != nil {
		return nil, err
	}

	original, err := s.maintenanceRepo.GetByID(ctx, maintenance.ID)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateMaintenance(maintenance); err != nil {
		return nil, err
	}

	original.VehicleID = maintenance.VehicleID
	original.Description = maintenance.Description
	original.ScheduledDate = maintenance.ScheduledDate
	original.Status = maintenance.Status
	original.ActualCompletionDate = maintenance.ActualCompletionDate
	original.Cost = maintenance.Cost
	original.OdometerReadingKm = maintenance.OdometerReadingKm
	original.PerformedBy = maintenance.PerformedBy
	original.MaintenanceType = maintenance.MaintenanceType

	if maintenance.Version != 0 {
		original.Version = maintenance.Version
	}

	if err := s.maintenanceRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	if err := s.applyOdometer(ctx, original); err != nil {
		return nil, err
	}

	if err := s.reconciler.Reconcile(ctx, original.VehicleID); err != nil {
		return nil, err
	}

	return original, nil
}

func (s *maintenanceService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	if err := Authorize(actor, "", ActionDelete); err != nil {
		return err
	}

	maintenance, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.reconciler.Reconcile(ctx, maintenance.VehicleID)
}

// applyOdometer lifts the vehicle odometer to the recorded reading. The
// vehicle odometer is the maximum of all recorded readings.
func (s *maintenanceService) applyOdometer(ctx context.Context, maintenance *models.Maintenance) error {
	if maintenance.OdometerReadingKm == nil {
		return nil
	}
	return s.vehicleRepo.RaiseOdometer(ctx, maintenance.VehicleID, *maintenance.OdometerReadingKm)
}
