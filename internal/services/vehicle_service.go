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

type VehicleService interface {
	Create(ctx context.Context, actor models.Actor, vehicle *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Vehicle, error)
	List(ctx context.Context, actor models.Actor) ([]*models.Vehicle, error)
	Update(ctx context.Context, actor models.Actor, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error
}

type vehicleService struct {
	vehicleRepo     interfaces.VehicleRepository
	tripRepo        interfaces.TripRepository
	fuelRepo        interfaces.FuelRecordRepository
	maintenanceRepo interfaces.MaintenanceRepository
	logger          *logger.Logger
}

func NewVehicleService(
	vehicleRepo interfaces.VehicleRepository,
	tripRepo interfaces.TripRepository,
	fuelRepo interfaces.FuelRecordRepository,
	maintenanceRepo interfaces.MaintenanceRepository,
	logger *logger.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		fuelRepo:        fuelRepo,
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

func (s *vehicleService) Create(ctx context.Context, actor models.Actor, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := Authorize(actor, "", ActionManageFleet); err != nil {
		return nil, err
	}
	if err := validators.ValidateVehicle(vehicle); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id":          vehicle.ID.Hex(),
		"registration_number": vehicle.RegistrationNumber,
	}).Info("vehicle created")

	return vehicle, nil
}

func (s *vehicleService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context, actor models.Actor) ([]*models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) Update(ctx context.Context, actor models.Actor, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := Authorize(actor, "", ActionManageFleet); err != nil {
		return nil, err
	}

	original, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateVehicle(vehicle); err != nil {
		return nil, err
	}

	// Status is derived from maintenance while outstanding work exists; an
	// edit may not override the reconciler's verdict.
	if original.Status == models.VehicleStatusInMaintenance && vehicle.Status != original.Status {
		outstanding, err := s.maintenanceRepo.CountOutstandingByVehicle(ctx, vehicle.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check outstanding maintenance: %w", err)
		}
		if outstanding > 0 {
			return nil, fmt.Errorf("vehicle has outstanding maintenance, status is derived: %w", utils.ErrValidationFailed)
		}
	}

	original.RegistrationNumber = vehicle.RegistrationNumber
	original.Capacity = vehicle.Capacity
	original.Status = vehicle.Status
	original.Make = vehicle.Make
	original.Model = vehicle.Model
	original.ManufacturingYear = vehicle.ManufacturingYear
	original.FuelType = vehicle.FuelType
	original.CurrentOdometerKm = vehicle.CurrentOdometerKm
	original.LastServicedDate = vehicle.LastServicedDate

	if vehicle.Version != 0 {
		original.Version = vehicle.Version
	}

	if err := s.vehicleRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	return original, nil
}

// Delete refuses while trips reference the vehicle. Fuel and maintenance
// records cascade with the vehicle.
func (s *vehicleService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	if err := Authorize(actor, "", ActionDelete); err != nil {
		return err
	}

	tripCount, err := s.tripRepo.CountByVehicle(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count trips for vehicle: %w", err)
	}
	if tripCount > 0 {
		return fmt.Errorf("vehicle %s has %d trips: %w", id.Hex(), tripCount, utils.ErrHasDependents)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fuelRepo.DeleteByVehicle(ctx, id); err != nil {
		return err
	}
	if err := s.maintenanceRepo.DeleteByVehicle(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("vehicle_id", id.Hex()).Info("vehicle deleted with fuel and maintenance records")

	return nil
}
