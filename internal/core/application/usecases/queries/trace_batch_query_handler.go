package queries

import (
	"context"
	"database/sql"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// TraceBatchQueryHandler answers "where did this batch go": every
// non-cancelled shipment that drew stock from the batch.
type TraceBatchQueryHandler struct {
	db *gorm.DB
}

// NewTraceBatchQueryHandler creates a handler for batch traces.
func NewTraceBatchQueryHandler(db *gorm.DB) TraceBatchQueryHandler {
	return TraceBatchQueryHandler{db: db}
}

// Handle executes the trace. A missing batch surfaces as an
// ObjectNotFoundError.
func (h TraceBatchQueryHandler) Handle(ctx context.Context, query TraceBatchQuery) (TraceBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TraceBatchQueryResponse{}, err
	}

	var resp TraceBatchQueryResponse
	headRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.code,
			b.product_id,
			p.name,
			b.status
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.id = ?
	`, query.BatchID()).Rows()
	if err != nil {
		return TraceBatchQueryResponse{}, err
	}
	defer headRows.Close()

	if !headRows.Next() {
		if err = headRows.Err(); err != nil {
			return TraceBatchQueryResponse{}, err
		}
		return TraceBatchQueryResponse{}, errs.NewObjectNotFoundError("batchId", query.BatchID())
	}
	if err = headRows.Scan(
		&resp.BatchID,
		&resp.BatchCode,
		&resp.ProductID,
		&resp.ProductName,
		&resp.Status,
	); err != nil {
		return TraceBatchQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sh.id,
			sh.code,
			sh.status,
			o.id,
			o.code,
			o.store_id,
			s.name,
			si.quantity,
			sh.shipped_at
		FROM shipment_items si
		JOIN shipments sh ON sh.id = si.shipment_id
		JOIN orders o ON o.id = sh.order_id
		JOIN stores s ON s.id = o.store_id
		WHERE si.batch_id = ? AND sh.status != 'cancelled'
		ORDER BY sh.created_at DESC, sh.id DESC
	`, query.BatchID()).Rows()
	if err != nil {
		return TraceBatchQueryResponse{}, err
	}
	defer rows.Close()

	resp.Shipments = make([]BatchShipmentTrace, 0)
	for rows.Next() {
		var trace BatchShipmentTrace
		var shippedAt sql.NullTime
		if err = rows.Scan(
			&trace.ShipmentID,
			&trace.ShipmentCode,
			&trace.ShipmentStatus,
			&trace.OrderID,
			&trace.OrderCode,
			&trace.StoreID,
			&trace.StoreName,
			&trace.Quantity,
			&shippedAt,
		); err != nil {
			return TraceBatchQueryResponse{}, err
		}
		if shippedAt.Valid {
			trace.ShippedAt = &shippedAt.Time
		}
		resp.Shipments = append(resp.Shipments, trace)
	}
	if err = rows.Err(); err != nil {
		return TraceBatchQueryResponse{}, err
	}

	return resp, nil
}
