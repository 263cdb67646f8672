package commands

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// UpdateOrderCommand represents a request to edit a pending order: replace
// its lines and change the delivery date and notes. Prices are
// re-snapshotted from the catalog for the new lines.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	deliveryDate *time.Time
	notes        string
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a pending order.
func NewUpdateOrderCommand(
	orderID int64,
	deliveryDate *time.Time,
	notes string,
	items []OrderItemInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// DeliveryDate returns the new requested delivery date, or nil.
func (c UpdateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// Notes returns the new order note.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the replacement order lines.
func (c UpdateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []OrderItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}
	c.items = items
	return nil
}
