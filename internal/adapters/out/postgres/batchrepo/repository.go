package batchrepo

import (
	"context"
	"errors"
	"time"

	"ckms/internal/core/domain/model/inventory"
	"ckms/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch to the database. The generated identifier is
// assigned back onto the aggregate.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *inventory.Batch) error {
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

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing batch to the database.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *inventory.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).Where("id = ?", dto.ID).
		Select("current_quantity", "expiry_date", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id int64) (*inventory.Batch, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a batch while holding a FOR UPDATE lock on its
// row. The lock serializes stock decrements across concurrent shipment
// writes.
func (r *GormBatchRepository) GetForUpdate(ctx context.Context, id int64) (*inventory.Batch, error) {
	return r.get(ctx, id, true)
}

func (r *GormBatchRepository) get(ctx context.Context, id int64, forUpdate bool) (*inventory.Batch, error) {
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto BatchDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveExpiredBy returns batches not yet marked expired whose expiry
// date has passed. Rows are locked so the sweep can mark them without
// racing concurrent shipment writes.
func (r *GormBatchRepository) GetActiveExpiredBy(ctx context.Context, now time.Time) ([]*inventory.Batch, error) {
	var dtos []BatchDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status != ?", inventory.BatchExpired.String()).
		Where("expiry_date IS NOT NULL AND expiry_date < ?", now).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*inventory.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		batches = append(batches, b)
	}
	return batches, nil
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
