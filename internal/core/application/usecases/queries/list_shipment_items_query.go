package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrListShipmentItemsQueryIsNotConstructed = errors.New(
	"ListShipmentItemsQuery must be created via NewListShipmentItemsQuery constructor",
)

// ListShipmentItemsQuery retrieves the lines of one shipment.
type ListShipmentItemsQuery struct { //nolint:recvcheck //using for validation
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewListShipmentItemsQuery creates a query for the lines of a shipment.
func NewListShipmentItemsQuery(shipmentID int64) (ListShipmentItemsQuery, error) {
	q := ListShipmentItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setShipmentID(shipmentID); err != nil {
		return ListShipmentItemsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentItemsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentItemsQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose lines are listed.
func (q ListShipmentItemsQuery) ShipmentID() int64 { return q.shipmentID }

func (q *ListShipmentItemsQuery) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	q.shipmentID = shipmentID
	return nil
}
