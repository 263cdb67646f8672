package jobs

import (
	"context"
	"log/slog"
	"time"

	"ckms/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BatchExpiryJob marks inventory batches past their expiry date as
// expired so shipments stop drawing from them.
type BatchExpiryJob struct {
	handler  commands.ExpireBatchesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewBatchExpiryJob creates the expiry job. The schedule is a cron
// expression with a seconds field; production runs it daily.
func NewBatchExpiryJob(
	handler commands.ExpireBatchesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BatchExpiryJob {
	return &BatchExpiryJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "batch_expiry_job"),
	}
}

// Start schedules the expiry sweep.
func (j *BatchExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Batch expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the expiry sweep.
func (j *BatchExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Batch expiry job stopped")
}

func (j *BatchExpiryJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewExpireBatchesCommand(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Batch expiry job built an invalid command", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Batch expiry sweep failed", "error", err)
		return
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Batches marked expired", "count", expired)
	}
}
