package ports

import (
	"context"

	"ckms/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and its lines.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// upserting its lines.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate with its lines.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment aggregate with its lines while
	// holding a FOR UPDATE lock on the shipment row.
	GetForUpdate(ctx context.Context, id int64) (*shipment.Shipment, error)

	// SumShippedForOrderItem returns the total quantity shipped against
	// one order line across all non-cancelled shipments.
	// excludeShipmentItemID removes one shipment line from the sum (the
	// line being edited); pass 0 to exclude nothing. Callers must hold
	// the order-line lock to make the sum-then-check sequence atomic.
	SumShippedForOrderItem(ctx context.Context, orderItemID, excludeShipmentItemID int64) (int, error)

	// SumShippedByOrderItem returns per-order-line shipped totals for a
	// whole order, excluding cancelled shipments. Used by fulfillment
	// reconciliation.
	SumShippedByOrderItem(ctx context.Context, orderID int64) (map[int64]int, error)
}
