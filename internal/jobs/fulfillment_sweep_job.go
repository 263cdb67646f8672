package jobs

import (
	"context"
	"errors"
	"log/slog"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// activeOrderSource lists the orders whose fulfillment may still change.
// Satisfied by the order repository.
type activeOrderSource interface {
	GetActiveIDs(ctx context.Context) ([]int64, error)
}

// FulfillmentSweepJob periodically re-reconciles the fulfillment of every
// non-terminal order against its live shipments. Shipment writes already
// reconcile in-transaction; the sweep is a safety net that repairs any
// drift.
type FulfillmentSweepJob struct {
	handler  commands.ReconcileOrderFulfillmentCommandHandler
	orders   activeOrderSource
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewFulfillmentSweepJob creates the sweep job. The schedule is a cron
// expression with a seconds field.
func NewFulfillmentSweepJob(
	handler commands.ReconcileOrderFulfillmentCommandHandler,
	orders activeOrderSource,
	schedule string,
	logger *slog.Logger,
) *FulfillmentSweepJob {
	return &FulfillmentSweepJob{
		handler:  handler,
		orders:   orders,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "fulfillment_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *FulfillmentSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Fulfillment sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *FulfillmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Fulfillment sweep job stopped")
}

func (j *FulfillmentSweepJob) run() {
	ctx := context.Background()

	ids, err := j.orders.GetActiveIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fulfillment sweep failed to list active orders", "error", err)
		return
	}

	for _, id := range ids {
		cmd, cmdErr := commands.NewReconcileOrderFulfillmentCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep built an invalid command", "orderId", id, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An order deleted or finished between listing and
			// reconciling is not a fault.
			if errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Fulfillment reconciliation failed", "orderId", id, "error", handleErr)
		}
	}
}
