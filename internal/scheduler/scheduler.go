package scheduler

import (
	"context"
	"time"

	"fleetops/internal/models"
	"fleetops/internal/repositories/interfaces"
	"fleetops/internal/services"
	"fleetops/internal/utils"
	"fleetops/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scheduler runs the periodic background jobs of the fleet back office.
type Scheduler struct {
	cron            *cron.Cron
	maintenanceRepo interfaces.MaintenanceRepository
	reconciler      *services.StatusReconciler
	logger          *logger.Logger
}

func NewScheduler(
	maintenanceRepo interfaces.MaintenanceRepository,
	reconciler *services.StatusReconciler,
	logger *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		maintenanceRepo: maintenanceRepo,
		reconciler:      reconciler,
		logger:          logger,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Mark maintenance past its scheduled date as overdue daily at 1 AM UTC
	_, err := s.cron.AddFunc("0 1 * * *", s.runOverdueJob)
	if err != nil {
		s.logger.WithError(err).Error("failed to register overdue maintenance job")
	}

	s.cron.Start()
	s.logger.Info("fleet scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("fleet scheduler stopped")
}

func (s *Scheduler) runOverdueJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	marked, err := s.MarkOverdueMaintenance(ctx)
	if err != nil {
		s.logger.WithError(err).Error("overdue maintenance job failed")
		return
	}
	s.logger.WithField("marked", marked).Info("overdue maintenance job complete")
}

// MarkOverdueMaintenance flips still-scheduled records whose scheduled date
// has passed into the overdue status and reconciles the touched vehicles.
// A version conflict on one record skips that record; the next run picks it
// up again.
func (s *Scheduler) MarkOverdueMaintenance(ctx context.Context) (int, error) {
	cutoff := utils.StartOfDay(time.Now())
	records, err := s.maintenanceRepo.ListScheduledBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	marked := 0
	touched := make(map[primitive.ObjectID]struct{})
	for _, record := range records {
		record.Status = models.MaintenanceStatusOverdue
		if err := s.maintenanceRepo.Update(ctx, record); err != nil {
			if utils.IsConcurrencyConflict(err) {
				s.logger.WithField("maintenance_id", record.ID.Hex()).Warn("skipping overdue mark, record changed concurrently")
				continue
			}
			return marked, err
		}
		marked++
		touched[record.VehicleID] = struct{}{}
	}

	for vehicleID := range touched {
		if err := s.reconciler.Reconcile(ctx, vehicleID); err != nil {
			return marked, err
		}
	}

	return marked, nil
}
