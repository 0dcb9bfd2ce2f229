// Package jobs provides scheduled background tasks for the order backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ServiceTimeReconciliationJob - Runs nightly to recompute every
// restaurant's average service time from its delivered orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next scheduled run; a failed
// reconciliation leaves the per-delivery figures in place.
package jobs
