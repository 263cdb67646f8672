package queries

import (
	"context"
	"database/sql"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// TraceShipmentQueryHandler answers "what went into this shipment":
// every inventory batch its lines drew from.
type TraceShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTraceShipmentQueryHandler creates a handler for shipment traces.
func NewTraceShipmentQueryHandler(db *gorm.DB) TraceShipmentQueryHandler {
	return TraceShipmentQueryHandler{db: db}
}

// Handle executes the trace. A missing shipment surfaces as an
// ObjectNotFoundError. Lines without a batch reference are not traceable
// and are omitted.
func (h TraceShipmentQueryHandler) Handle(
	ctx context.Context,
	query TraceShipmentQuery,
) (TraceShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TraceShipmentQueryResponse{}, err
	}

	var resp TraceShipmentQueryResponse
	headRows, err := h.db.WithContext(ctx).
		Raw("SELECT id, code FROM shipments WHERE id = ?", query.ShipmentID()).Rows()
	if err != nil {
		return TraceShipmentQueryResponse{}, err
	}
	defer headRows.Close()

	if !headRows.Next() {
		if err = headRows.Err(); err != nil {
			return TraceShipmentQueryResponse{}, err
		}
		return TraceShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}
	if err = headRows.Scan(&resp.ShipmentID, &resp.ShipmentCode); err != nil {
		return TraceShipmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.code,
			b.product_id,
			p.name,
			si.quantity,
			b.status,
			b.manufacture_date,
			b.expiry_date
		FROM shipment_items si
		JOIN batches b ON b.id = si.batch_id
		JOIN products p ON p.id = b.product_id
		WHERE si.shipment_id = ?
		ORDER BY si.id
	`, query.ShipmentID()).Rows()
	if err != nil {
		return TraceShipmentQueryResponse{}, err
	}
	defer rows.Close()

	resp.Batches = make([]ShipmentBatchTrace, 0)
	for rows.Next() {
		var trace ShipmentBatchTrace
		var expiryDate sql.NullTime
		if err = rows.Scan(
			&trace.BatchID,
			&trace.BatchCode,
			&trace.ProductID,
			&trace.ProductName,
			&trace.Quantity,
			&trace.BatchStatus,
			&trace.ManufactureDate,
			&expiryDate,
		); err != nil {
			return TraceShipmentQueryResponse{}, err
		}
		if expiryDate.Valid {
			trace.ExpiryDate = &expiryDate.Time
		}
		resp.Batches = append(resp.Batches, trace)
	}
	if err = rows.Err(); err != nil {
		return TraceShipmentQueryResponse{}, err
	}

	return resp, nil
}
