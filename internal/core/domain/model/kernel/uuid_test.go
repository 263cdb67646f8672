package kernel_test

import (
	"testing"

	"ckms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates_valid_uuid", func(t *testing.T) {
		// When
		id := kernel.NewUUID()

		// Then
		assert.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("successive_uuids_differ", func(t *testing.T) {
		// When
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		// Then
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses_canonical_representation", func(t *testing.T) {
		// Given
		raw := "550e8400-e29b-41d4-a716-446655440000"

		// When
		id, err := kernel.UUIDFromString(raw)

		// Then
		require.NoError(t, err)
		assert.NoError(t, id.Validate())
		assert.Equal(t, raw, id.String())
	})

	t.Run("rejects_malformed_input", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromString("not-a-uuid")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var id kernel.UUID

		// When
		err := id.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same_value_is_equal", func(t *testing.T) {
		// Given
		raw := "550e8400-e29b-41d4-a716-446655440000"
		first, err := kernel.UUIDFromString(raw)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(raw)
		require.NoError(t, err)

		// Then
		assert.True(t, first.IsEqual(second))
	})
}
