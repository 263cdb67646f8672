package catalog_test

import (
	"testing"

	"ckms/internal/core/domain/model/catalog"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProductType(t *testing.T) {
	t.Run("round_trips_valid_types", func(t *testing.T) {
		for _, pt := range []catalog.ProductType{catalog.Material, catalog.SemiFinished, catalog.Finished} {
			parsed, err := catalog.ProductTypeFromString(pt.String())
			require.NoError(t, err)
			assert.Equal(t, pt, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := catalog.ProductTypeFromString("raw")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("creates_active_product", func(t *testing.T) {
		// When
		p, err := catalog.NewProduct("FLOUR-01", "Bread flour", "T65", "kg", 1.80, catalog.Material, int64Ptr(2))

		// Then
		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.Equal(t, "FLOUR-01", p.SKU())
		assert.Equal(t, "Bread flour", p.Name())
		assert.Equal(t, "kg", p.Unit())
		assert.InDelta(t, 1.80, p.Price(), 0.0001)
		assert.Equal(t, catalog.Material, p.Type())
		assert.True(t, p.IsActive())
	})

	t.Run("rejects_missing_sku", func(t *testing.T) {
		_, err := catalog.NewProduct("", "Bread flour", "", "kg", 1.80, catalog.Material, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := catalog.NewProduct("FLOUR-01", "Bread flour", "", "kg", -1, catalog.Material, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_type", func(t *testing.T) {
		_, err := catalog.NewProduct("FLOUR-01", "Bread flour", "", "kg", 1.80, catalog.ProductTypeUnknown, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Update(t *testing.T) {
	t.Run("updates_editable_fields_keeps_sku", func(t *testing.T) {
		// Given
		p, err := catalog.NewProduct("FLOUR-01", "Bread flour", "", "kg", 1.80, catalog.Material, nil)
		require.NoError(t, err)

		// When
		err = p.Update("Strong bread flour", "T65, high protein", "kg", 2.10, catalog.Material, int64Ptr(3), false)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "FLOUR-01", p.SKU())
		assert.Equal(t, "Strong bread flour", p.Name())
		assert.InDelta(t, 2.10, p.Price(), 0.0001)
		assert.False(t, p.IsActive())
	})

	t.Run("rejects_invalid_update", func(t *testing.T) {
		p, err := catalog.NewProduct("FLOUR-01", "Bread flour", "", "kg", 1.80, catalog.Material, nil)
		require.NoError(t, err)

		err = p.Update("", "", "kg", 2.10, catalog.Material, nil, true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("creates_category", func(t *testing.T) {
		c, err := catalog.NewCategory("Bakery", "Breads and pastries")
		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.Equal(t, "Bakery", c.Name())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := catalog.NewCategory("", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore_keeps_id", func(t *testing.T) {
		c, err := catalog.RestoreCategory(5, "Bakery", "")
		require.NoError(t, err)
		assert.Equal(t, int64(5), c.ID())
	})
}
