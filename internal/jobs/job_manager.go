package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	capacityAuditJob *CapacityAuditJob
}

// NewJobManager creates a job manager around the capacity audit.
// reconciler may be nil to only report drift.
func NewJobManager(
	finder driftFinder,
	reconciler capacityReconciler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		capacityAuditJob: NewCapacityAuditJob(finder, reconciler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.capacityAuditJob.Stop()
}
