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

type FuelService interface {
	Create(ctx context.Context, actor models.Actor, record *models.FuelRecord) (*models.FuelRecord, error)
	Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.FuelRecord, error)
	List(ctx context.Context, actor models.Actor, filter models.FuelRecordFilter) ([]*models.FuelRecord, error)
	Update(ctx context.Context, actor models.Actor, record *models.FuelRecord) (*models.FuelRecord, error)
	Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error
}

type fuelService struct {
	fuelRepo    interfaces.FuelRecordRepository
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewFuelService(
	fuelRepo interfaces.FuelRecordRepository,
	vehicleRepo interfaces.VehicleRepository,
	logger *logger.Logger,
) FuelService {
	return &fuelService{
		fuelRepo:    fuelRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Create records a fueling event. Drivers may only file records against
// themselves. An odometer reading lifts the vehicle's current odometer when
// it exceeds the stored value.
func (s *fuelService) Create(ctx context.Context, actor models.Actor, record *models.FuelRecord) (*models.FuelRecord, error) {
	if err := Authorize(actor, record.DriverID, ActionCreate); err != nil {
		return nil, err
	}
	if err := validators.ValidateFuelRecord(record); err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.Exists(ctx, record.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify fuel record vehicle: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vehicle %s: %w", record.VehicleID.Hex(), utils.ErrNotFound)
	}

	if err := s.fuelRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if record.OdometerReadingKm != nil {
		if err := s.vehicleRepo.RaiseOdometer(ctx, record.VehicleID, *record.OdometerReadingKm); err != nil {
			return nil, err
		}
	}

	return record, nil
}

func (s *fuelService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.FuelRecord, error) {
	record, err := s.fuelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, record.DriverID, ActionView); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns fuel records matching the filter. Driver callers are forced
// onto their own records regardless of the requested driver filter.
func (s *fuelService) List(ctx context.Context, actor models.Actor, filter models.FuelRecordFilter) ([]*models.FuelRecord, error) {
	if actor.Role == models.RoleDriver {
		filter = filter.WithDriver(actor.ID)
	}
	return s.fuelRepo.List(ctx, filter)
}

// Update is the administrator/operator full edit. A corrected odometer
// reading lifts the vehicle's current odometer the same way a new record does.
func (s *fuelService) Update(ctx context.Context, actor models.Actor, record *models.FuelRecord) (*models.FuelRecord, error) {
	if err := Authorize(actor, "", ActionEdit); err != nil {
		return nil, err
	}

	original, err := s.fuelRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateFuelRecord(record); err != nil {
		return nil, err
	}

	original.VehicleID = record.VehicleID
	original.DriverID = record.DriverID
	original.Date = record.Date
	original.FuelQuantity = record.FuelQuantity
	original.Cost = record.Cost
	original.OdometerReadingKm = record.OdometerReadingKm
	original.Location = record.Location

	if err := s.fuelRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	if original.OdometerReadingKm != nil {
		if err := s.vehicleRepo.RaiseOdometer(ctx, original.VehicleID, *original.OdometerReadingKm); err != nil {
			return nil, err
		}
	}

	return original, nil
}

func (s *fuelService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	if err := Authorize(actor, "", ActionDelete); err != nil {
		return err
	}
	return s.fuelRepo.Delete(ctx, id)
}
