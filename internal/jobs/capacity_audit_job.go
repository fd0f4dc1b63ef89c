package jobs

import (
	"context"
	"errors"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every fifteen minutes, seconds field first.
const DefaultAuditSchedule = "0 */15 * * * *"

type driftFinder interface {
	Handle(ctx context.Context, query queries.GetCapacityDriftQuery) ([]queries.CapacityDrift, error)
}

type capacityReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileTourCapacityCommand) (int, error)
}

// AuditReport is the outcome of one audit run.
type AuditReport struct {
	Drifted    int
	Reconciled int
}

// CapacityAuditJob looks for tours whose stored remaining capacity differs
// from total minus the weight of their active bookings. With a reconciler
// it also corrects them; without one it only reports.
type CapacityAuditJob struct {
	finder     driftFinder
	reconciler capacityReconciler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCapacityAuditJob creates the audit job. reconciler may be nil.
func NewCapacityAuditJob(
	finder driftFinder,
	reconciler capacityReconciler,
	schedule string,
	logger *slog.Logger,
) *CapacityAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &CapacityAuditJob{
		finder:     finder,
		reconciler: reconciler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "capacity_audit_job"),
	}
}

// Start registers the audit with the cron scheduler and starts it.
func (j *CapacityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Capacity audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity audit job started",
		"schedule", j.schedule, "auto_reconcile", j.reconciler != nil)
	return nil
}

// Run performs one audit pass. A tour that fails to reconcile does not stop
// the others; the failures are returned joined.
func (j *CapacityAuditJob) Run(ctx context.Context) (AuditReport, error) {
	drifts, err := j.finder.Handle(ctx, queries.NewGetCapacityDriftQuery())
	if err != nil {
		return AuditReport{}, err
	}

	report := AuditReport{Drifted: len(drifts)}
	var failures []error
	for _, d := range drifts {
		j.logger.WarnContext(ctx, "Capacity drift detected",
			"tour_id", d.TourID,
			"total", d.TotalCapacity,
			"remaining", d.RemainingCapacity,
			"reserved", d.ReservedWeight,
			"drift", d.Drift)

		if j.reconciler == nil {
			continue
		}

		cmd, cmdErr := commands.NewReconcileTourCapacityCommand(d.TourID)
		if cmdErr != nil {
			failures = append(failures, cmdErr)
			continue
		}
		corrected, recErr := j.reconciler.Handle(ctx, cmd)
		if recErr != nil {
			failures = append(failures, recErr)
			continue
		}
		report.Reconciled++
		j.logger.InfoContext(ctx, "Capacity reconciled", "tour_id", d.TourID, "corrected", corrected)
	}

	return report, errors.Join(failures...)
}

// Stop stops the scheduler; a running audit finishes first.
func (j *CapacityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity audit job stopped")
}
