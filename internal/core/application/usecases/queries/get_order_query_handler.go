package queries

import (
	"context"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order surfaces as an
// ObjectNotFoundError; an order outside the requester's store scope as
// an AccessDeniedError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.store_id,
			s.name,
			o.created_by,
			u.full_name,
			o.delivery_date,
			o.notes,
			o.total_amount,
			o.status,
			o.fulfillment,
			o.created_at
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		LEFT JOIN users u ON u.id = o.created_by
		WHERE o.id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	if scope := query.StoreScope(); scope != nil && view.StoreID != *scope {
		return OrderView{}, errs.NewAccessDeniedError("order belongs to another store")
	}

	views := []OrderView{view}
	if err = attachOrderItems(ctx, h.db, views, []int64{view.ID}); err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}
