package jobs

import (
	"fmt"
	"log/slog"

	"ckms/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fulfillmentSweepJob *FulfillmentSweepJob
	batchExpiryJob      *BatchExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileHandler commands.ReconcileOrderFulfillmentCommandHandler,
	orders activeOrderSource,
	sweepSchedule string,
	expireHandler commands.ExpireBatchesCommandHandler,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fulfillmentSweepJob: NewFulfillmentSweepJob(reconcileHandler, orders, sweepSchedule, logger),
		batchExpiryJob:      NewBatchExpiryJob(expireHandler, expirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment sweep job: %w", err)
	}

	if err := jm.batchExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.fulfillmentSweepJob.Stop()
		return fmt.Errorf("failed to start batch expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fulfillmentSweepJob.Stop()
	jm.batchExpiryJob.Stop()
}
