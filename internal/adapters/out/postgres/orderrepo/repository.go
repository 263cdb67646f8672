package orderrepo

import (
	"context"
	"errors"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database. The generated
// identifiers are assigned back onto the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database, replacing its lines.
// Lines removed from the aggregate are deleted, new lines are inserted
// and get their generated identifiers assigned back.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("delivery_date", "notes", "total_amount", "status", "fulfillment", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceItems(ctx, aggregate, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) replaceItems(ctx context.Context, aggregate *order.Order, dto OrderDTO) error {
	kept := make([]int64, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.ID != 0 {
			kept = append(kept, item.ID)
		}
	}

	deleteQuery := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(kept) > 0 {
		deleteQuery = deleteQuery.Where("id NOT IN ?", kept)
	}
	if err := deleteQuery.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
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
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order with its lines while holding a
// FOR UPDATE lock on the order row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id int64, forUpdate bool) (*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetItemForUpdate retrieves a single order line while holding a
// FOR UPDATE lock on its row. The line must belong to the given order.
func (r *GormOrderRepository) GetItemForUpdate(ctx context.Context, orderID, itemID int64) (*order.Item, error) {
	var dto OrderItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND order_id = ?", itemID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItemId", itemID)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetActiveIDs returns the identifiers of orders in non-terminal statuses.
func (r *GormOrderRepository) GetActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status NOT IN ?", []string{order.Delivered.String(), order.Cancelled.String()}).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
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
