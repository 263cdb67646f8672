package queries

import (
	"context"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListShipmentItemsQueryHandler retrieves the lines of one shipment.
type ListShipmentItemsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentItemsQueryHandler creates a handler for shipment line listings.
func NewListShipmentItemsQueryHandler(db *gorm.DB) ListShipmentItemsQueryHandler {
	return ListShipmentItemsQueryHandler{db: db}
}

// Handle executes the query. A missing shipment surfaces as an
// ObjectNotFoundError.
func (h ListShipmentItemsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentItemsQuery,
) ([]ShipmentItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM shipments WHERE id = ?", query.ShipmentID()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	return loadShipmentItems(ctx, h.db, query.ShipmentID())
}
