package queries

import (
	"context"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single product read model.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. A missing product surfaces as an
// ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.sku,
			p.name,
			p.description,
			p.unit,
			p.price,
			p.product_type,
			p.category_id,
			c.name,
			p.active
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?
	`, query.ProductID()).Rows()
	if err != nil {
		return ProductView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductView{}, err
		}
		return ProductView{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}

	return scanProductView(rows)
}
