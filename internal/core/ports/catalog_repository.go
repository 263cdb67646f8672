package ports

import (
	"context"

	"ckms/internal/core/domain/model/catalog"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product. A duplicate SKU surfaces as a
	// Conflict error.
	Add(ctx context.Context, aggregate *catalog.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *catalog.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id int64) (*catalog.Product, error)

	// GetByIDs retrieves the products with the given identifiers.
	// Used to snapshot prices when creating or editing orders; a missing
	// identifier surfaces as an ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*catalog.Product, error)
}

// CategoryRepository defines the persistence contract for catalog categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, aggregate *catalog.Category) error

	// Get retrieves a category by its identifier.
	Get(ctx context.Context, id int64) (*catalog.Category, error)
}
