package commands

import (
	"context"
	"errors"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/core/ports"
	"ckms/internal/pkg/codes"
	"ckms/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles shipment creation. The parent order
// must be in processing; seeded lines take each order line's remaining
// unshipped quantity. Seeded lines carry no batch reference, so no stock
// is consumed here.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the created
// aggregate. The order lock is taken first so the remaining-quantity
// computation and the fulfillment update commit atomically.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	code, err := codes.Generate(codes.ShipmentPrefix)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	parent, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !parent.Status().AllowsShipmentCreation() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("shipments can only be created for orders in processing"))
	}

	var items []*shipment.Item
	if cmd.SeedFromOrder() {
		if items, err = seedItems(ctx, parent, shipmentRepo); err != nil {
			return nil, err
		}
	}

	aggregate, err := shipment.NewShipment(code, cmd.OrderID(),
		cmd.DriverName(), cmd.DriverPhone(), cmd.Notes(), items)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
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

// seedItems builds one shipment line per order line at the remaining
// unshipped quantity. Fully shipped lines are skipped.
func seedItems(
	ctx context.Context,
	parent *order.Order,
	shipments ports.ShipmentRepository,
) ([]*shipment.Item, error) {
	shipped, err := shipments.SumShippedByOrderItem(ctx, parent.ID())
	if err != nil {
		return nil, err
	}

	var items []*shipment.Item
	for _, line := range parent.Items() {
		remaining := line.Quantity() - shipped[line.ID()]
		if remaining <= 0 {
			continue
		}
		item, err := shipment.NewItem(line.ID(), nil, remaining, "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
