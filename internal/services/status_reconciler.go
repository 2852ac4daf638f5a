package services

import (
	"context"
	"fmt"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionRunner executes fn inside a single storage transaction. The
// context handed to fn carries the transaction; repository calls made with it
// commit or abort together.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatusReconciler keeps a vehicle's status consistent with its outstanding
// maintenance work. It is invoked after every maintenance create, update and
// delete for the affected vehicle.
type StatusReconciler struct {
	vehicleRepo     interfaces.VehicleRepository
	maintenanceRepo interfaces.MaintenanceRepository
	tx              TransactionRunner
	logger          *logger.Logger
}

// NewStatusReconciler builds a reconciler. tx may be nil; without it the
// read and write run unwrapped and rely on a later reconcile to converge.
func NewStatusReconciler(
	vehicleRepo interfaces.VehicleRepository,
	maintenanceRepo interfaces.MaintenanceRepository,
	tx TransactionRunner,
	logger *logger.Logger,
) *StatusReconciler {
	return &StatusReconciler{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		tx:              tx,
		logger:          logger,
	}
}

// Reconcile recomputes the vehicle's status from its maintenance records: any
// outstanding record forces in_maintenance, none means active. The operation
// is idempotent. Vehicles parked out_of_service or retired are left alone.
//
// With a transaction runner wired, the count and the status write happen in
// one transaction, so two concurrent maintenance mutations on the same
// vehicle cannot interleave between them.
func (r *StatusReconciler) Reconcile(ctx context.Context, vehicleID primitive.ObjectID) error {
	if r.tx == nil {
		return r.reconcile(ctx, vehicleID)
	}
	return r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return r.reconcile(txCtx, vehicleID)
	})
}

func (r *StatusReconciler) reconcile(ctx context.Context, vehicleID primitive.ObjectID) error {
	vehicle, err := r.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("reconcile vehicle status: %w", err)
	}

	if !vehicle.Status.Reconcilable() {
		r.logger.WithFields(map[string]interface{}{
			"vehicle_id": vehicleID.Hex(),
			"status":     vehicle.Status,
		}).Debug("skipping reconciliation for non-reconcilable vehicle status")
		return nil
	}

	outstanding, err := r.maintenanceRepo.CountOutstandingByVehicle(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("reconcile vehicle status: %w", err)
	}

	desired := models.VehicleStatusActive
	if outstanding > 0 {
		desired = models.VehicleStatusInMaintenance
	}

	if vehicle.Status == desired {
		return nil
	}

	if err := r.vehicleRepo.UpdateStatus(ctx, vehicleID, desired); err != nil {
		return fmt.Errorf("reconcile vehicle status: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"vehicle_id":  vehicleID.Hex(),
		"from":        vehicle.Status,
		"to":          desired,
		"outstanding": outstanding,
	}).Info("vehicle status reconciled")

	return nil
}
