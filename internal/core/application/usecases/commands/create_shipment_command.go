package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a shipment against
// an order the kitchen is processing. When seedFromOrder is set, the
// shipment starts with one line per order line at the full remaining
// (unshipped) quantity; otherwise it starts empty and lines are added
// individually.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	driverName    string
	driverPhone   string
	notes         string
	seedFromOrder bool

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
func NewCreateShipmentCommand(
	orderID int64,
	driverName string,
	driverPhone string,
	notes string,
	seedFromOrder bool,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		driverName:    driverName,
		driverPhone:   driverPhone,
		notes:         notes,
		seedFromOrder: seedFromOrder,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the order the shipment fulfills.
func (c CreateShipmentCommand) OrderID() int64 {
	return c.orderID
}

// DriverName returns the assigned driver's name.
func (c CreateShipmentCommand) DriverName() string {
	return c.driverName
}

// DriverPhone returns the assigned driver's phone number.
func (c CreateShipmentCommand) DriverPhone() string {
	return c.driverPhone
}

// Notes returns the shipment note.
func (c CreateShipmentCommand) Notes() string {
	return c.notes
}

// SeedFromOrder reports whether the shipment starts with the order's
// remaining quantities.
func (c CreateShipmentCommand) SeedFromOrder() bool {
	return c.seedFromOrder
}

func (c *CreateShipmentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}
