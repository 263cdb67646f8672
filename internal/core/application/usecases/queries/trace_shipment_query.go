package queries

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var ErrTraceShipmentQueryIsNotConstructed = errors.New(
	"TraceShipmentQuery must be created via NewTraceShipmentQuery constructor",
)

// TraceShipmentQuery follows one shipment backward: every inventory
// batch its lines drew from.
type TraceShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewTraceShipmentQuery creates a query tracing one shipment.
func NewTraceShipmentQuery(shipmentID int64) (TraceShipmentQuery, error) {
	q := TraceShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setShipmentID(shipmentID); err != nil {
		return TraceShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TraceShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTraceShipmentQueryIsNotConstructed)
}

// ShipmentID returns the shipment being traced.
func (q TraceShipmentQuery) ShipmentID() int64 { return q.shipmentID }

func (q *TraceShipmentQuery) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}
	q.shipmentID = shipmentID
	return nil
}

// ShipmentBatchTrace is one batch a shipment drew stock from.
type ShipmentBatchTrace struct {
	BatchID         int64      `json:"batchId"`
	BatchCode       string     `json:"batchCode"`
	ProductID       int64      `json:"productId"`
	ProductName     string     `json:"productName"`
	Quantity        int        `json:"quantity"`
	BatchStatus     string     `json:"batchStatus"`
	ManufactureDate time.Time  `json:"manufactureDate"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
}

// TraceShipmentQueryResponse is the backward trace of one shipment.
type TraceShipmentQueryResponse struct {
	ShipmentID   int64                `json:"shipmentId"`
	ShipmentCode string               `json:"shipmentCode"`
	Batches      []ShipmentBatchTrace `json:"batches"`
}
