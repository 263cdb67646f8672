package commands

import (
	"errors"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment
// through its strict state machine.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to transition a shipment.
func NewUpdateShipmentStatusCommand(shipmentID int64, status shipment.Status) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment being transitioned.
func (c UpdateShipmentStatusCommand) ShipmentID() int64 {
	return c.shipmentID
}

// Status returns the target status.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
