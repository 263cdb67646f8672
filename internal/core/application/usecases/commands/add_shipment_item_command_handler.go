package commands

import (
	"context"
	"fmt"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/core/ports"
	"ckms/internal/pkg/errs"
)

// AddShipmentItemCommandHandler handles adding a line to a shipment.
// The over-shipment and batch-stock guards run inside one transaction,
// with rows locked in the fixed order shipment, order, order item,
// batch. Concurrent writers against the same order line serialize on
// the order item row lock, so the shipped sum they read is always the
// committed truth.
type AddShipmentItemCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddShipmentItemCommandHandler creates a handler for adding shipment lines.
func NewAddShipmentItemCommandHandler(uowFactory ShipmentUoWFactory) AddShipmentItemCommandHandler {
	return AddShipmentItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated shipment.
func (h AddShipmentItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddShipmentItemCommand,
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

	parent, err := orderRepo.GetForUpdate(ctx, aggregate.OrderID())
	if err != nil {
		return nil, err
	}

	line, err := orderRepo.GetItemForUpdate(ctx, parent.ID(), cmd.OrderItemID())
	if err != nil {
		return nil, err
	}

	shipped, err := shipmentRepo.SumShippedForOrderItem(ctx, line.ID(), 0)
	if err != nil {
		return nil, err
	}
	if shipped+cmd.Quantity() > line.Quantity() {
		return nil, errs.NewValueIsOutOfRangeError("quantity", cmd.Quantity(), 1, line.Quantity()-shipped)
	}

	if cmd.BatchID() != nil {
		if err = consumeFromBatch(ctx, uow.BatchRepository(), *cmd.BatchID(), cmd.Quantity()); err != nil {
			return nil, err
		}
	}

	item, err := shipment.NewItem(line.ID(), cmd.BatchID(), cmd.Quantity(), cmd.Note())
	if err != nil {
		return nil, err
	}
	if err = aggregate.AddItem(item); err != nil {
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

// consumeFromBatch locks a batch row and decrements its stock by the
// given quantity.
func consumeFromBatch(ctx context.Context, batches ports.BatchRepository, batchID int64, quantity int) error {
	batch, err := batches.GetForUpdate(ctx, batchID)
	if err != nil {
		return err
	}
	if batch.CurrentQuantity() < quantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("batch %s holds %d, requested %d", batch.Code(), batch.CurrentQuantity(), quantity))
	}
	if err = batch.Consume(quantity); err != nil {
		return err
	}
	return batches.Update(ctx, batch)
}
