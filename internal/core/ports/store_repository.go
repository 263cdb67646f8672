package ports

import (
	"context"

	"ckms/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for stores.
type StoreRepository interface {
	// Add persists a new store.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by its identifier.
	Get(ctx context.Context, id int64) (*store.Store, error)
}
