package inventory_test

import (
	"testing"
	"time"

	"ckms/internal/core/domain/model/inventory"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBatch(t *testing.T, quantity int) *inventory.Batch {
	t.Helper()

	expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b, err := inventory.NewBatch("BAT-20250115-AAAAA", 4, quantity,
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), &expiry)
	require.NoError(t, err)
	return b
}

func TestNewBatch(t *testing.T) {
	t.Run("creates_active_batch_with_full_stock", func(t *testing.T) {
		// When
		b := makeBatch(t, 100)

		// Then
		assert.NoError(t, b.Validate())
		assert.Equal(t, "BAT-20250115-AAAAA", b.Code())
		assert.Equal(t, int64(4), b.ProductID())
		assert.Equal(t, 100, b.InitialQuantity())
		assert.Equal(t, 100, b.CurrentQuantity())
		assert.Equal(t, inventory.BatchActive, b.Status())
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := inventory.NewBatch("", 4, 100, time.Now(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := inventory.NewBatch("BAT-20250115-AAAAA", 4, 0, time.Now(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_batch_fails_validation", func(t *testing.T) {
		var b inventory.Batch
		require.ErrorIs(t, b.Validate(), inventory.ErrBatchIsNotConstructed)
	})
}

func TestBatch_Consume(t *testing.T) {
	t.Run("decrements_current_quantity", func(t *testing.T) {
		// Given
		b := makeBatch(t, 100)

		// When
		err := b.Consume(30)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 70, b.CurrentQuantity())
		assert.Equal(t, 100, b.InitialQuantity())
		assert.Equal(t, inventory.BatchActive, b.Status())
	})

	t.Run("reaching_zero_marks_batch_depleted", func(t *testing.T) {
		// Given
		b := makeBatch(t, 30)

		// When
		err := b.Consume(30)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 0, b.CurrentQuantity())
		assert.Equal(t, inventory.BatchDepleted, b.Status())
	})

	t.Run("rejects_consuming_more_than_stock", func(t *testing.T) {
		// Given
		b := makeBatch(t, 30)

		// When
		err := b.Consume(31)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 30, b.CurrentQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		b := makeBatch(t, 30)

		require.ErrorIs(t, b.Consume(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, b.Consume(-5), errs.ErrValueIsInvalid)
	})

	t.Run("rejects_consuming_from_expired_batch", func(t *testing.T) {
		// Given
		b := makeBatch(t, 30)
		b.MarkExpired()

		// When
		err := b.Consume(1)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 30, b.CurrentQuantity())
	})
}

func TestBatch_Restock(t *testing.T) {
	t.Run("returns_consumed_stock", func(t *testing.T) {
		// Given
		b := makeBatch(t, 100)
		require.NoError(t, b.Consume(40))

		// When
		err := b.Restock(40)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 100, b.CurrentQuantity())
	})

	t.Run("reactivates_depleted_batch", func(t *testing.T) {
		// Given
		b := makeBatch(t, 30)
		require.NoError(t, b.Consume(30))
		require.Equal(t, inventory.BatchDepleted, b.Status())

		// When
		err := b.Restock(10)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 10, b.CurrentQuantity())
		assert.Equal(t, inventory.BatchActive, b.Status())
	})

	t.Run("rejects_restocking_above_initial_quantity", func(t *testing.T) {
		// Given
		b := makeBatch(t, 100)
		require.NoError(t, b.Consume(10))

		// When
		err := b.Restock(11)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 90, b.CurrentQuantity())
	})

	t.Run("expired_batch_stays_expired", func(t *testing.T) {
		// Given
		b := makeBatch(t, 100)
		require.NoError(t, b.Consume(10))
		b.MarkExpired()

		// When
		err := b.Restock(10)

		// Then
		require.NoError(t, err)
		assert.Equal(t, inventory.BatchExpired, b.Status())
	})
}

func TestBatch_IsExpired(t *testing.T) {
	t.Run("compares_against_expiry_date", func(t *testing.T) {
		b := makeBatch(t, 100)

		assert.False(t, b.IsExpired(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)))
		assert.True(t, b.IsExpired(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("batch_without_expiry_never_expires", func(t *testing.T) {
		b, err := inventory.NewBatch("BAT-20250115-BBBBB", 4, 100, time.Now(), nil)
		require.NoError(t, err)

		assert.False(t, b.IsExpired(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestRestoreBatch(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		// When
		b, err := inventory.RestoreBatch(9, "BAT-20250110-CCCCC", 4, 100, 35,
			time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), nil, inventory.BatchActive)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(9), b.ID())
		assert.Equal(t, 100, b.InitialQuantity())
		assert.Equal(t, 35, b.CurrentQuantity())
	})

	t.Run("rejects_current_above_initial", func(t *testing.T) {
		_, err := inventory.RestoreBatch(9, "BAT-20250110-CCCCC", 4, 100, 101,
			time.Now(), nil, inventory.BatchActive)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := inventory.RestoreBatch(9, "BAT-20250110-CCCCC", 4, 100, 35,
			time.Now(), nil, inventory.BatchStatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
