package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of non-cancelled shipments.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns one page of shipments, newest
// first, with the parent order's code and store resolved.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM shipments WHERE status != 'cancelled'").
		Scan(&total).Error; err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sh.id,
			sh.code,
			sh.order_id,
			o.code,
			o.store_id,
			s.name,
			sh.driver_name,
			sh.driver_phone,
			sh.notes,
			sh.status,
			sh.shipped_at,
			sh.delivered_at,
			sh.created_at
		FROM shipments sh
		JOIN orders o ON o.id = sh.order_id
		JOIN stores s ON s.id = o.store_id
		WHERE sh.status != 'cancelled'
		ORDER BY sh.created_at DESC, sh.id DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), offset).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ShipmentView, 0)
	for rows.Next() {
		view, scanErr := scanShipmentView(rows)
		if scanErr != nil {
			return ListShipmentsQueryResponse{}, scanErr
		}
		shipments = append(shipments, view)
	}
	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	return ListShipmentsQueryResponse{
		Shipments: shipments,
		Meta:      newPageMeta(total, query.Page(), query.Limit()),
	}, nil
}

// scanShipmentView reads one row of the shipment projection. The column
// order must match the SELECT in the handlers that share it.
func scanShipmentView(rows *sql.Rows) (ShipmentView, error) {
	var view ShipmentView
	var shippedAt, deliveredAt sql.NullTime

	if err := rows.Scan(
		&view.ID,
		&view.Code,
		&view.OrderID,
		&view.OrderCode,
		&view.StoreID,
		&view.StoreName,
		&view.DriverName,
		&view.DriverPhone,
		&view.Notes,
		&view.Status,
		&shippedAt,
		&deliveredAt,
		&view.CreatedAt,
	); err != nil {
		return ShipmentView{}, err
	}

	if shippedAt.Valid {
		view.ShippedAt = &shippedAt.Time
	}
	if deliveredAt.Valid {
		view.DeliveredAt = &deliveredAt.Time
	}

	return view, nil
}
