package commands

import (
	"context"

	"ckms/internal/core/domain/model/shipment"
)

// UpdateShipmentDetailsCommandHandler handles driver and note edits on
// non-terminal shipments.
type UpdateShipmentDetailsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentDetailsCommandHandler creates a handler for shipment
// detail edits.
func NewUpdateShipmentDetailsCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentDetailsCommandHandler {
	return UpdateShipmentDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail edit and returns the updated aggregate.
func (h UpdateShipmentDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentDetailsCommand,
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
	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(cmd.DriverName(), cmd.DriverPhone(), cmd.Notes()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
