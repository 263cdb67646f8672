package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListStoresQueryHandler retrieves all stores.
type ListStoresQueryHandler struct {
	db *gorm.DB
}

// NewListStoresQueryHandler creates a handler for store listings.
func NewListStoresQueryHandler(db *gorm.DB) ListStoresQueryHandler {
	return ListStoresQueryHandler{db: db}
}

// Handle executes the query and returns all stores sorted by name.
func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]StoreView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]StoreView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			store_type,
			active
		FROM stores
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanStoreView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		stores = append(stores, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

func scanStoreView(rows *sql.Rows) (StoreView, error) {
	var view StoreView
	if err := rows.Scan(
		&view.ID,
		&view.Name,
		&view.Address,
		&view.Phone,
		&view.Type,
		&view.Active,
	); err != nil {
		return StoreView{}, err
	}
	return view, nil
}
