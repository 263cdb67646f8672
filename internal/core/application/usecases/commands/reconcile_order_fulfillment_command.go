package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrReconcileOrderFulfillmentCommandIsNotConstructed = errors.New(
	"ReconcileOrderFulfillmentCommand must be created via NewReconcileOrderFulfillmentCommand constructor",
)

// ReconcileOrderFulfillmentCommand represents a request to re-derive one
// order's fulfillment value from its live shipments. Shipment write
// handlers do this inline; this standalone command backs the periodic
// sweep that catches drift.
type ReconcileOrderFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewReconcileOrderFulfillmentCommand creates a reconciliation command.
func NewReconcileOrderFulfillmentCommand(orderID int64) (ReconcileOrderFulfillmentCommand, error) {
	cmd := ReconcileOrderFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReconcileOrderFulfillmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderFulfillmentCommandIsNotConstructed)
}

// OrderID returns the order to reconcile.
func (c ReconcileOrderFulfillmentCommand) OrderID() int64 {
	return c.orderID
}

func (c *ReconcileOrderFulfillmentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}
