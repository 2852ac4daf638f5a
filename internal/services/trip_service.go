package services

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/utils"
	"fleetops/internal/validators"
	"fleetops/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripStatusUpdate carries the only fields a status update may touch. Nil
// pointers mean "leave the stored value alone"; they never clear anything.
type TripStatusUpdate struct {
	Status           models.TripStatus `json:"status"`
	ActualStartTime  *time.Time        `json:"actual_start_time"`
	ActualEndTime    *time.Time        `json:"actual_end_time"`
	ActualDistanceKm *float64          `json:"actual_distance_km"`
}

type TripService interface {
	Create(ctx context.Context, actor models.Actor, trip *models.Trip) (*models.Trip, error)
	Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Trip, error)
	List(ctx context.Context, actor models.Actor, filter models.TripFilter) ([]*models.Trip, error)
	Update(ctx context.Context, actor models.Actor, trip *models.Trip) (*models.Trip, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id primitive.ObjectID, update TripStatusUpdate) (*models.Trip, error)
	Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error
}

type tripService struct {
	tripRepo    interfaces.TripRepository
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewTripService(
	tripRepo interfaces.TripRepository,
	vehicleRepo interfaces.VehicleRepository,
	logger *logger.Logger,
) TripService {
	return &tripService{
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Create schedules a new trip. Trip creation is staff work: drivers are
// assigned to trips, they never create them. The status defaults to pending
// when unspecified.
func (s *tripService) Create(ctx context.Context, actor models.Actor, trip *models.Trip) (*models.Trip, error) {
	if err := Authorize(actor, "", ActionCreate); err != nil {
		return nil, err
	}
	if err := validators.ValidateTrip(trip); err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.Exists(ctx, trip.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify trip vehicle: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vehicle %s: %w", trip.VehicleID.Hex(), utils.ErrNotFound)
	}

	if trip.Status == "" {
		trip.Status = models.TripStatusPending
	}
	if !trip.Status.IsValid() {
		return nil, fmt.Errorf("unknown trip status %q: %w", trip.Status, utils.ErrValidationFailed)
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"trip_id":    trip.ID.Hex(),
		"vehicle_id": trip.VehicleID.Hex(),
		"driver_id":  trip.DriverID,
	}).Info("trip created")

	return trip, nil
}

func (s *tripService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*models.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, trip.DriverID, ActionView); err != nil {
		return nil, err
	}
	return trip, nil
}

// List returns trips matching the filter. Driver callers are forced onto
// their own trips regardless of the requested driver filter.
func (s *tripService) List(ctx context.Context, actor models.Actor, filter models.TripFilter) ([]*models.Trip, error) {
	if actor.Role == models.RoleDriver {
		filter = filter.WithDriver(actor.ID)
	}
	return s.tripRepo.List(ctx, filter)
}

// Update is the administrator/operator full edit. It mutates scheduling and
// routing fields; status and actual timestamps go through UpdateStatus only.
func (s *tripService) Update(ctx context.Context, actor models.Actor, trip *models.Trip) (*models.Trip, error) {
	if err := Authorize(actor, "", ActionEdit); err != nil {
		return nil, err
	}

	original, err := s.tripRepo.GetByID(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateTrip(trip); err != nil {
		return nil, err
	}

	original.VehicleID = trip.VehicleID
	original.DriverID = trip.DriverID
	original.StartLocation = trip.StartLocation
	original.EndLocation = trip.EndLocation
	original.ScheduledStartTime = trip.ScheduledStartTime
	original.ScheduledEndTime = trip.ScheduledEndTime
	original.EstimatedDistanceKm = trip.EstimatedDistanceKm
	original.RouteDetails = trip.RouteDetails

	// A stale form carries an older version; the conditional write surfaces
	// it as a conflict instead of silently overwriting.
	if trip.Version != 0 {
		original.Version = trip.Version
	}

	if err := s.tripRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	return original, nil
}

// UpdateStatus applies a trip status transition, deriving actual timestamps.
// Drivers may only update their own trips. Explicit timestamp arguments win
// over auto-stamping and over stored values; omitted arguments never clear a
// stored value. A concurrency conflict is surfaced, not retried.
func (s *tripService) UpdateStatus(ctx context.Context, actor models.Actor, id primitive.ObjectID, update TripStatusUpdate) (*models.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, trip.DriverID, ActionUpdateStatus); err != nil {
		return nil, err
	}

	if !update.Status.IsValid() {
		return nil, fmt.Errorf("unknown trip status %q: %w", update.Status, utils.ErrValidationFailed)
	}

	trip.Status = update.Status

	if update.ActualStartTime != nil {
		trip.ActualStartTime = update.ActualStartTime
	}
	if update.ActualEndTime != nil {
		trip.ActualEndTime = update.ActualEndTime
	}
	if update.ActualDistanceKm != nil {
		trip.ActualDistanceKm = update.ActualDistanceKm
	}

	now := time.Now()
	if trip.Status == models.TripStatusInProgress && trip.ActualStartTime == nil {
		trip.ActualStartTime = &now
	}
	if trip.Status == models.TripStatusCompleted && trip.ActualEndTime == nil {
		trip.ActualEndTime = &now
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"trip_id": trip.ID.Hex(),
		"status":  trip.Status,
		"actor":   actor.ID,
	}).Info("trip status updated")

	return trip, nil
}

// Delete removes a trip unconditionally; trips own no dependent records.
func (s *tripService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	if err := Authorize(actor, "", ActionDelete); err != nil {
		return err
	}
	return s.tripRepo.Delete(ctx, id)
}
