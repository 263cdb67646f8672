package queries

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var (
	ErrTraceBatchQueryIsNotConstructed = errors.New(
		"TraceBatchQuery must be created via NewTraceBatchQuery constructor",
	)
	ErrBatchIDIsRequired = errors.New("batch id is required")
)

// TraceBatchQuery follows one inventory batch forward: every shipment
// line that drew stock from it, with the shipment and order it went out
// on. Used for recalls and quality investigations.
type TraceBatchQuery struct { //nolint:recvcheck //using for validation
	batchID int64

	guard guard.ConstructorGuard
}

// NewTraceBatchQuery creates a query tracing one batch.
func NewTraceBatchQuery(batchID int64) (TraceBatchQuery, error) {
	q := TraceBatchQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setBatchID(batchID); err != nil {
		return TraceBatchQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TraceBatchQuery) Validate() error {
	return q.guard.Validate(ErrTraceBatchQueryIsNotConstructed)
}

// BatchID returns the batch being traced.
func (q TraceBatchQuery) BatchID() int64 { return q.batchID }

func (q *TraceBatchQuery) setBatchID(batchID int64) error {
	if batchID <= 0 {
		return ErrBatchIDIsRequired
	}
	q.batchID = batchID
	return nil
}

// BatchShipmentTrace is one shipment a batch went out on.
type BatchShipmentTrace struct {
	ShipmentID     int64      `json:"shipmentId"`
	ShipmentCode   string     `json:"shipmentCode"`
	ShipmentStatus string     `json:"shipmentStatus"`
	OrderID        int64      `json:"orderId"`
	OrderCode      string     `json:"orderCode"`
	StoreID        int64      `json:"storeId"`
	StoreName      string     `json:"storeName"`
	Quantity       int        `json:"quantity"`
	ShippedAt      *time.Time `json:"shippedAt,omitempty"`
}

// TraceBatchQueryResponse is the forward trace of one batch.
type TraceBatchQueryResponse struct {
	BatchID     int64                `json:"batchId"`
	BatchCode   string               `json:"batchCode"`
	ProductID   int64                `json:"productId"`
	ProductName string               `json:"productName"`
	Status      string               `json:"status"`
	Shipments   []BatchShipmentTrace `json:"shipments"`
}
