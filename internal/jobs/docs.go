// Package jobs provides scheduled background tasks for the order
// management service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the central kitchen.
//
// # Available Jobs
//
// 1. FulfillmentSweepJob - Periodically re-reconciles order fulfillment against live shipments
// 2. BatchExpiryJob - Marks inventory batches past their expiry date as expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, orderRepo, sweepSchedule,
//		expireHandler, expirySchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a seconds field, supplied through
// configuration. The sweep runs every minute by default; the expiry job
// runs nightly, after midnight, so batches expire on their date boundary.
//
// # Error Handling
//
// - The sweep skips orders that disappear between listing and reconciling
// - All other failures are logged and the job continues with the next tick
// - Failed job starts will stop any already running jobs
package jobs
