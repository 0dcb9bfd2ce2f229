package jobs

import (
	"fmt"
	"log/slog"

	"deliverus/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	serviceTimeReconciliationJob *ServiceTimeReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reconcileHandler commands.ReconcileServiceTimesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		serviceTimeReconciliationJob: NewServiceTimeReconciliationJob(reconcileHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.serviceTimeReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start service time reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.serviceTimeReconciliationJob.Stop()
}
