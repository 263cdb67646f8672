package ports

import (
	"context"

	"ckms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// replacing its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with its lines while
	// holding a FOR UPDATE lock on the order row. Used by shipment
	// writes that cascade status or fulfillment onto the order.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetItemForUpdate retrieves a single order line while holding a
	// FOR UPDATE lock on its row. The line must belong to the given
	// order; a mismatch surfaces as an ObjectNotFoundError. This lock
	// serializes the over-shipment guard across concurrent shipment
	// writes.
	GetItemForUpdate(ctx context.Context, orderID, itemID int64) (*order.Item, error)

	// GetActiveIDs returns the identifiers of orders in non-terminal
	// statuses. Used by the fulfillment reconciliation sweep.
	GetActiveIDs(ctx context.Context) ([]int64, error)
}
