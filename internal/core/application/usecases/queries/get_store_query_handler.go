package queries

import (
	"context"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStoreQueryHandler retrieves a single store read model.
type GetStoreQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreQueryHandler creates a handler for single store queries.
func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db}
}

// Handle executes the query. A missing store surfaces as an
// ObjectNotFoundError.
func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (StoreView, error) {
	if err := query.Validate(); err != nil {
		return StoreView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			store_type,
			active
		FROM stores
		WHERE id = ?
	`, query.StoreID()).Rows()
	if err != nil {
		return StoreView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return StoreView{}, err
		}
		return StoreView{}, errs.NewObjectNotFoundError("storeId", query.StoreID())
	}

	return scanStoreView(rows)
}
