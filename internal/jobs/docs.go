// Package jobs provides scheduled background tasks for the shipping service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// CapacityAuditJob compares each tour's stored remaining capacity with
// total capacity minus the weight of its non-cancelled bookings. Drift is
// logged at warn level and, when auto-reconcile is enabled, corrected through
// ReconcileTourCapacityCommandHandler.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(driftHandler, reconcileHandler, "0 */15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Pass a nil reconciler to run the audit in report-only mode.
package jobs
