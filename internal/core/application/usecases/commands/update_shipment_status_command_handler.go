package commands

import (
	"context"
	"time"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles shipment status transitions
// and their side effects. Everything happens in one transaction:
//
//   - the strict machine transition with its timestamp stamping
//   - on cancellation, restocking every batch the shipment consumed
//   - cascading the parent order to shipping or delivered
//   - re-deriving the parent order's fulfillment
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment
// status transitions.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition and returns the updated aggregate.
// An illegal transition rolls back with no state change.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if cmd.Status() == shipment.Cancelled {
		if err = restockConsumedBatches(ctx, aggregate, uow.BatchRepository()); err != nil {
			return nil, err
		}
	}

	parent, err := orderRepo.GetForUpdate(ctx, aggregate.OrderID())
	if err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case shipment.Shipping:
		parent.MarkShipping()
	case shipment.Delivered:
		parent.MarkDelivered()
	default:
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = reconcileFulfillment(ctx, parent, shipmentRepo); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, parent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// restockConsumedBatches returns every batch-tracked quantity of a
// cancelled shipment to inventory, locking each batch row before the
// increment.
func restockConsumedBatches(
	ctx context.Context,
	aggregate *shipment.Shipment,
	batches ports.BatchRepository,
) error {
	for _, item := range aggregate.Items() {
		if item.BatchID() == nil {
			continue
		}

		batch, err := batches.GetForUpdate(ctx, *item.BatchID())
		if err != nil {
			return err
		}
		if err = batch.Restock(item.Quantity()); err != nil {
			return err
		}
		if err = batches.Update(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}
