package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query := NewListOrdersQuery(1, 20, nil)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", page.Meta.Total)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders, newest
// first, with their lines attached.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := ""
	args := []any{}
	if query.StoreID() != nil {
		where = "WHERE o.store_id = ?"
		args = append(args, *query.StoreID())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
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
		`+where+`
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, view)
		ids = append(ids, view.ID)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = attachOrderItems(ctx, h.db, orders, ids); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Meta:   newPageMeta(total, query.Page(), query.Limit()),
	}, nil
}

// scanOrderView reads one row of the order listing projection. The column
// order must match the SELECT in the handlers that share it.
func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var createdBy uuid.UUID
	var createdByName sql.NullString
	var deliveryDate sql.NullTime

	if err := rows.Scan(
		&view.ID,
		&view.Code,
		&view.StoreID,
		&view.StoreName,
		&createdBy,
		&createdByName,
		&deliveryDate,
		&view.Notes,
		&view.TotalAmount,
		&view.Status,
		&view.Fulfillment,
		&view.CreatedAt,
	); err != nil {
		return OrderView{}, err
	}

	view.CreatedBy = createdBy.String()
	view.CreatedByName = createdByName.String
	if deliveryDate.Valid {
		view.DeliveryDate = &deliveryDate.Time
	}

	return view, nil
}

// attachOrderItems loads the lines for a set of orders in one round trip
// and distributes them onto the views.
func attachOrderItems(ctx context.Context, db *gorm.DB, orders []OrderView, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_id,
			p.name,
			i.quantity,
			i.unit_price,
			i.notes
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN ?
		ORDER BY i.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[int64][]OrderItemView, len(ids))
	for rows.Next() {
		var item OrderItemView
		var orderID int64
		if err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Notes,
		); err != nil {
			return err
		}
		item.LineTotal = float64(item.Quantity) * item.UnitPrice
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}
