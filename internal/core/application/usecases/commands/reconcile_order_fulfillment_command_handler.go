package commands

import (
	"context"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/services"
	"ckms/internal/core/ports"
)

// ReconcileOrderFulfillmentCommandHandler re-derives and persists one
// order's fulfillment value inside its own transaction.
type ReconcileOrderFulfillmentCommandHandler struct {
	uowFactory ReconcileUoWFactory
}

// NewReconcileOrderFulfillmentCommandHandler creates a handler for
// standalone fulfillment reconciliation.
func NewReconcileOrderFulfillmentCommandHandler(uowFactory ReconcileUoWFactory) ReconcileOrderFulfillmentCommandHandler {
	return ReconcileOrderFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order, recomputes its fulfillment from live shipments,
// and persists the result.
func (h ReconcileOrderFulfillmentCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = reconcileFulfillment(ctx, aggregate, uow.ShipmentRepository()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reconcileFulfillment recomputes the fulfillment value for a loaded
// order from per-line shipped sums and records it on the aggregate. The
// caller persists the order and owns the surrounding transaction; shipment
// write handlers call this so the derived value commits atomically with
// the write that changed it.
func reconcileFulfillment(ctx context.Context, aggregate *order.Order, shipments ports.ShipmentRepository) error {
	shipped, err := shipments.SumShippedByOrderItem(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	progress := make([]services.ItemProgress, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		progress = append(progress, services.ItemProgress{
			Ordered: item.Quantity(),
			Shipped: shipped[item.ID()],
		})
	}

	return aggregate.SetFulfillment(services.NewFulfillmentResolver().Resolve(progress))
}
