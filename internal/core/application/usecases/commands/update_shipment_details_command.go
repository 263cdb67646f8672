package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrUpdateShipmentDetailsCommandIsNotConstructed = errors.New(
		"UpdateShipmentDetailsCommand must be created via NewUpdateShipmentDetailsCommand constructor",
	)
	ErrShipmentIDIsRequired = errors.New("shipment id is required")
)

// UpdateShipmentDetailsCommand represents a request to change a
// shipment's driver details and notes. Rejected on terminal shipments by
// the aggregate.
type UpdateShipmentDetailsCommand struct { //nolint:recvcheck //using for validation
	shipmentID  int64
	driverName  string
	driverPhone string
	notes       string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentDetailsCommand creates a command to edit shipment details.
func NewUpdateShipmentDetailsCommand(
	shipmentID int64,
	driverName string,
	driverPhone string,
	notes string,
) (UpdateShipmentDetailsCommand, error) {
	cmd := UpdateShipmentDetailsCommand{
		driverName:  driverName,
		driverPhone: driverPhone,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return UpdateShipmentDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentDetailsCommandIsNotConstructed)
}

// ShipmentID returns the shipment being edited.
func (c UpdateShipmentDetailsCommand) ShipmentID() int64 {
	return c.shipmentID
}

// DriverName returns the new driver name.
func (c UpdateShipmentDetailsCommand) DriverName() string {
	return c.driverName
}

// DriverPhone returns the new driver phone number.
func (c UpdateShipmentDetailsCommand) DriverPhone() string {
	return c.driverPhone
}

// Notes returns the new shipment note.
func (c UpdateShipmentDetailsCommand) Notes() string {
	return c.notes
}

func (c *UpdateShipmentDetailsCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	c.shipmentID = shipmentID
	return nil
}
