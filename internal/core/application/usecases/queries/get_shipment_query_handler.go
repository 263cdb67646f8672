package queries

import (
	"context"
	"database/sql"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment read model with its
// lines, including batch codes for traceability.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. A missing shipment surfaces as an
// ObjectNotFoundError; a shipment outside the requester's store scope as
// an AccessDeniedError.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

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
		WHERE sh.id = ?
	`, query.ShipmentID()).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentView{}, err
		}
		return ShipmentView{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	view, err := scanShipmentView(rows)
	if err != nil {
		return ShipmentView{}, err
	}

	if scope := query.StoreScope(); scope != nil && view.StoreID != *scope {
		return ShipmentView{}, errs.NewAccessDeniedError("shipment belongs to another store")
	}

	view.Items, err = loadShipmentItems(ctx, h.db, view.ID)
	if err != nil {
		return ShipmentView{}, err
	}

	return view, nil
}

// loadShipmentItems loads the lines of one shipment with product names
// and batch codes resolved.
func loadShipmentItems(ctx context.Context, db *gorm.DB, shipmentID int64) ([]ShipmentItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			si.id,
			si.order_item_id,
			oi.product_id,
			p.name,
			si.batch_id,
			b.code,
			si.quantity,
			si.note
		FROM shipment_items si
		JOIN order_items oi ON oi.id = si.order_item_id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN batches b ON b.id = si.batch_id
		WHERE si.shipment_id = ?
		ORDER BY si.id
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ShipmentItemView, 0)
	for rows.Next() {
		var item ShipmentItemView
		var batchID sql.NullInt64
		var batchCode sql.NullString
		if err = rows.Scan(
			&item.ID,
			&item.OrderItemID,
			&item.ProductID,
			&item.ProductName,
			&batchID,
			&batchCode,
			&item.Quantity,
			&item.Note,
		); err != nil {
			return nil, err
		}
		if batchID.Valid {
			item.BatchID = &batchID.Int64
		}
		item.BatchCode = batchCode.String
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
