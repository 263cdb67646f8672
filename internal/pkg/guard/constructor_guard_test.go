package guard_test

import (
	"errors"
	"testing"

	"ckms/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NoError(t, g.Validate(errors.New("test object not constructed")))
		assert.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		assert.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// inside a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	var ErrQuantityNotConstructed = errors.New("Quantity must be created via NewQuantity")

	NewQuantity := func(value int) (Quantity, error) {
		if value <= 0 {
			return Quantity{}, errors.New("value must be positive")
		}
		return Quantity{
			value: value,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	ValidateQuantity := func(q Quantity) error {
		return q.guard.Validate(ErrQuantityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		q, err := NewQuantity(5)

		// Then
		require.NoError(t, err)
		assert.NoError(t, ValidateQuantity(q))
		assert.Equal(t, 5, q.value)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var q Quantity // zero value

		// When
		err := ValidateQuantity(q)

		// Then
		require.Error(t, err)
		assert.Equal(t, ErrQuantityNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := NewQuantity(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value must be positive")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
