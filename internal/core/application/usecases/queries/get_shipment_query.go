package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrShipmentIDIsRequired = errors.New("shipment id is required")
)

// GetShipmentQuery retrieves one shipment with its lines. A non-nil
// storeScope restricts access to shipments whose parent order belongs to
// that store.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID int64
	storeScope *int64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(shipmentID int64, storeScope *int64) (GetShipmentQuery, error) {
	q := GetShipmentQuery{
		storeScope: storeScope,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetShipmentQuery) ShipmentID() int64 { return q.shipmentID }

// StoreScope returns the store the requester is limited to, or nil.
func (q GetShipmentQuery) StoreScope() *int64 { return q.storeScope }

func (q *GetShipmentQuery) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	q.shipmentID = shipmentID
	return nil
}
