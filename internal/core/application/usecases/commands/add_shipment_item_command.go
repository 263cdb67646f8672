package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrAddShipmentItemCommandIsNotConstructed = errors.New(
		"AddShipmentItemCommand must be created via NewAddShipmentItemCommand constructor",
	)
	ErrOrderItemIDIsRequired = errors.New("order item id is required")
	ErrBatchIDIsInvalid      = errors.New("batch id is invalid")
)

// AddShipmentItemCommand represents a request to add a line to a
// shipment. The batch reference is optional; when present, stock is
// consumed from that batch.
type AddShipmentItemCommand struct { //nolint:recvcheck //using for validation
	shipmentID  int64
	orderItemID int64
	batchID     *int64
	quantity    int
	note        string

	guard guard.ConstructorGuard
}

// NewAddShipmentItemCommand creates a command to add a shipment line.
func NewAddShipmentItemCommand(
	shipmentID int64,
	orderItemID int64,
	batchID *int64,
	quantity int,
	note string,
) (AddShipmentItemCommand, error) {
	cmd := AddShipmentItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderItemID(orderItemID),
		cmd.setBatchID(batchID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddShipmentItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentItemCommandIsNotConstructed)
}

// ShipmentID returns the shipment receiving the line.
func (c AddShipmentItemCommand) ShipmentID() int64 {
	return c.shipmentID
}

// OrderItemID returns the order line the shipment line fulfills.
func (c AddShipmentItemCommand) OrderItemID() int64 {
	return c.orderItemID
}

// BatchID returns the batch to consume from, or nil.
func (c AddShipmentItemCommand) BatchID() *int64 {
	return c.batchID
}

// Quantity returns the quantity to ship.
func (c AddShipmentItemCommand) Quantity() int {
	return c.quantity
}

// Note returns the line note.
func (c AddShipmentItemCommand) Note() string {
	return c.note
}

func (c *AddShipmentItemCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AddShipmentItemCommand) setOrderItemID(orderItemID int64) error {
	if orderItemID <= 0 {
		return ErrOrderItemIDIsRequired
	}
	c.orderItemID = orderItemID
	return nil
}

func (c *AddShipmentItemCommand) setBatchID(batchID *int64) error {
	if batchID != nil && *batchID <= 0 {
		return ErrBatchIDIsInvalid
	}
	c.batchID = batchID
	return nil
}

func (c *AddShipmentItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
