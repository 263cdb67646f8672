package commands

import (
	"context"

	"ckms/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles edits to pending orders. The domain
// aggregate rejects edits once the order has left pending; the handler
// only orchestrates loading, re-snapshotting prices, and persistence.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command and returns the updated
// aggregate.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(cmd.DeliveryDate(), cmd.Notes()); err != nil {
		return nil, err
	}

	items, err := snapshotItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
