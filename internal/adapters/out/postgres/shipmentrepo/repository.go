package shipmentrepo

import (
	"context"
	"errors"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its lines to the database. The generated
// identifiers are assigned back onto the aggregate.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("code", dto.Code, err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	for i, item := range aggregate.Items() {
		if err := item.AssignID(dto.Items[i].ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database, upserting its lines.
// Lines are only ever added or edited, never removed, so there is no
// delete pass.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("driver_name", "driver_phone", "notes", "status", "shipped_at", "delivered_at", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for i := range dto.Items {
		itemDTO := dto.Items[i]
		if itemDTO.ID == 0 {
			if err := r.db.WithContext(ctx).Create(&itemDTO).Error; err != nil {
				return err
			}
			if err := aggregate.Items()[i].AssignID(itemDTO.ID); err != nil {
				return err
			}
			continue
		}
		if err := r.db.WithContext(ctx).Save(&itemDTO).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment with its lines by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a shipment with its lines while holding a
// FOR UPDATE lock on the shipment row.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id int64) (*shipment.Shipment, error) {
	return r.get(ctx, id, true)
}

func (r *GormShipmentRepository) get(ctx context.Context, id int64, forUpdate bool) (*shipment.Shipment, error) {
	query := r.db.WithContext(ctx).Preload("Items")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShipmentDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// SumShippedForOrderItem returns the total quantity shipped against one
// order line across all non-cancelled shipments. excludeShipmentItemID
// removes one shipment line from the sum; pass 0 to exclude nothing.
func (r *GormShipmentRepository) SumShippedForOrderItem(
	ctx context.Context,
	orderItemID, excludeShipmentItemID int64,
) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(si.quantity), 0)
		FROM shipment_items si
		JOIN shipments sh ON sh.id = si.shipment_id
		WHERE si.order_item_id = ?
		  AND si.id != ?
		  AND sh.status != 'cancelled'`,
		orderItemID, excludeShipmentItemID,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumShippedByOrderItem returns per-order-line shipped totals for a whole
// order, excluding cancelled shipments.
func (r *GormShipmentRepository) SumShippedByOrderItem(ctx context.Context, orderID int64) (map[int64]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT si.order_item_id, COALESCE(SUM(si.quantity), 0)
		FROM shipment_items si
		JOIN shipments sh ON sh.id = si.shipment_id
		JOIN order_items oi ON oi.id = si.order_item_id
		WHERE oi.order_id = ?
		  AND sh.status != 'cancelled'
		GROUP BY si.order_item_id`,
		orderID,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int64]int)
	for rows.Next() {
		var orderItemID int64
		var shipped int
		if scanErr := rows.Scan(&orderItemID, &shipped); scanErr != nil {
			return nil, scanErr
		}
		totals[orderItemID] = shipped
	}
	return totals, rows.Err()
}

// isUniqueViolation reports whether err is a unique index violation, in
// either GORM's translated form or the raw driver error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
