package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrUpdateShipmentItemCommandIsNotConstructed = errors.New(
		"UpdateShipmentItemCommand must be created via NewUpdateShipmentItemCommand constructor",
	)
	ErrShipmentItemIDIsRequired = errors.New("shipment item id is required")
)

// UpdateShipmentItemCommand represents a request to change the quantity
// of an existing shipment line. The line keeps its order line and batch
// references; only the quantity moves.
type UpdateShipmentItemCommand struct { //nolint:recvcheck //using for validation
	shipmentID     int64
	shipmentItemID int64
	quantity       int

	guard guard.ConstructorGuard
}

// NewUpdateShipmentItemCommand creates a command to edit a shipment line.
func NewUpdateShipmentItemCommand(
	shipmentID int64,
	shipmentItemID int64,
	quantity int,
) (UpdateShipmentItemCommand, error) {
	cmd := UpdateShipmentItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setShipmentItemID(shipmentItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateShipmentItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentItemCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the line.
func (c UpdateShipmentItemCommand) ShipmentID() int64 {
	return c.shipmentID
}

// ShipmentItemID returns the line being edited.
func (c UpdateShipmentItemCommand) ShipmentItemID() int64 {
	return c.shipmentItemID
}

// Quantity returns the new quantity.
func (c UpdateShipmentItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateShipmentItemCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentItemCommand) setShipmentItemID(shipmentItemID int64) error {
	if shipmentItemID <= 0 {
		return ErrShipmentItemIDIsRequired
	}
	c.shipmentItemID = shipmentItemID
	return nil
}

func (c *UpdateShipmentItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
