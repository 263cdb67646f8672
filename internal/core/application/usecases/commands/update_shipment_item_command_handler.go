package commands

import (
	"context"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"
)

// UpdateShipmentItemCommandHandler handles quantity edits on shipment
// lines. The over-shipment check excludes the edited line from the
// shipped sum, and batch-tracked lines move only the quantity delta:
// an increase consumes more stock, a decrease returns it.
type UpdateShipmentItemCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentItemCommandHandler creates a handler for shipment line edits.
func NewUpdateShipmentItemCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentItemCommandHandler {
	return UpdateShipmentItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated shipment.
func (h UpdateShipmentItemCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentItemCommand,
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
	if err = aggregate.ValidateItemsMutable(); err != nil {
		return nil, err
	}

	item, err := aggregate.FindItem(cmd.ShipmentItemID())
	if err != nil {
		return nil, err
	}

	parent, err := orderRepo.GetForUpdate(ctx, aggregate.OrderID())
	if err != nil {
		return nil, err
	}

	line, err := orderRepo.GetItemForUpdate(ctx, parent.ID(), item.OrderItemID())
	if err != nil {
		return nil, err
	}

	shippedElsewhere, err := shipmentRepo.SumShippedForOrderItem(ctx, line.ID(), item.ID())
	if err != nil {
		return nil, err
	}
	if shippedElsewhere+cmd.Quantity() > line.Quantity() {
		return nil, errs.NewValueIsOutOfRangeError("quantity", cmd.Quantity(), 1, line.Quantity()-shippedElsewhere)
	}

	delta := cmd.Quantity() - item.Quantity()
	if item.BatchID() != nil && delta != 0 {
		if err = applyBatchDelta(ctx, uow, *item.BatchID(), delta); err != nil {
			return nil, err
		}
	}

	if err = item.SetQuantity(cmd.Quantity()); err != nil {
		return nil, err
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

// applyBatchDelta moves a quantity delta against a batch: a positive
// delta consumes more stock, a negative one returns it.
func applyBatchDelta(ctx context.Context, uow ShipmentUoW, batchID int64, delta int) error {
	if delta > 0 {
		return consumeFromBatch(ctx, uow.BatchRepository(), batchID, delta)
	}

	batches := uow.BatchRepository()
	batch, err := batches.GetForUpdate(ctx, batchID)
	if err != nil {
		return err
	}
	if err = batch.Restock(-delta); err != nil {
		return err
	}
	return batches.Update(ctx, batch)
}
