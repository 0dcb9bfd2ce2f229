package jobs

import (
	"context"
	"log/slog"

	"deliverus/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconciliationSchedule runs the job nightly at 03:00 local time, outside
// the ordering peak.
const reconciliationSchedule = "0 3 * * *"

// ServiceTimeReconciliationJob recomputes every restaurant's average service
// time on a nightly schedule, repairing any drift left by the per-delivery
// updates.
type ServiceTimeReconciliationJob struct {
	handler commands.ReconcileServiceTimesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewServiceTimeReconciliationJob creates the nightly reconciliation job.
func NewServiceTimeReconciliationJob(
	handler commands.ReconcileServiceTimesCommandHandler,
	logger *slog.Logger,
) *ServiceTimeReconciliationJob {
	return &ServiceTimeReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "service_time_reconciliation_job"),
	}
}

// Start schedules the job.
func (j *ServiceTimeReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileServiceTimesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Service time reconciliation job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Service time reconciliation completed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Service time reconciliation job started (nightly at 03:00)")
	return nil
}

// Stop stops the job.
func (j *ServiceTimeReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Service time reconciliation job stopped")
}
