package ports

import (
	"context"
	"time"

	"ckms/internal/core/domain/model/inventory"
)

// BatchRepository defines the persistence contract for inventory batches.
type BatchRepository interface {
	// Add persists a new batch.
	Add(ctx context.Context, aggregate *inventory.Batch) error

	// Update persists changes to an existing batch.
	Update(ctx context.Context, aggregate *inventory.Batch) error

	// Get retrieves a batch by its identifier.
	Get(ctx context.Context, id int64) (*inventory.Batch, error)

	// GetForUpdate retrieves a batch while holding a FOR UPDATE lock on
	// its row. This lock serializes stock decrements across concurrent
	// shipment writes.
	GetForUpdate(ctx context.Context, id int64) (*inventory.Batch, error)

	// GetActiveExpiredBy returns batches still marked active or depleted
	// whose expiry date has passed. Used by the daily expiry sweep.
	GetActiveExpiredBy(ctx context.Context, now time.Time) ([]*inventory.Batch, error)
}
