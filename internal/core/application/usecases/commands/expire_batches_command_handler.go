package commands

import "context"

// ExpireBatchesCommandHandler marks overdue active batches as expired.
type ExpireBatchesCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewExpireBatchesCommandHandler creates a handler for the batch expiry sweep.
func NewExpireBatchesCommandHandler(uowFactory BatchUoWFactory) ExpireBatchesCommandHandler {
	return ExpireBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every active batch whose expiry date has passed and
// returns how many were expired.
func (h ExpireBatchesCommandHandler) Handle(ctx context.Context, cmd ExpireBatchesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	overdue, err := batchRepo.GetActiveExpiredBy(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, batch := range overdue {
		batch.MarkExpired()
		if err = batchRepo.Update(ctx, batch); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
