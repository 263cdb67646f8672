package codes_test

import (
	"testing"
	"time"

	"ckms/internal/pkg/codes"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAt(t *testing.T) {
	t.Run("produces_prefix_date_suffix_shape", func(t *testing.T) {
		// Given
		at := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

		// When
		code, err := codes.GenerateAt(codes.OrderPrefix, at)

		// Then
		require.NoError(t, err)
		assert.Regexp(t, `^ORD-20250115-[A-Z0-9]{5}$`, code)
	})

	t.Run("date_is_stamped_in_utc", func(t *testing.T) {
		// Given: 23:30 on Jan 15 in UTC+3 is 20:30 on Jan 15 UTC
		loc := time.FixedZone("UTC+3", 3*60*60)
		at := time.Date(2025, 1, 15, 23, 30, 0, 0, loc)

		// When
		code, err := codes.GenerateAt(codes.ShipmentPrefix, at)

		// Then
		require.NoError(t, err)
		assert.Regexp(t, `^SHP-20250115-[A-Z0-9]{5}$`, code)
	})

	t.Run("empty_prefix_returns_error", func(t *testing.T) {
		_, err := codes.GenerateAt("", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("uses_current_date", func(t *testing.T) {
		// When
		code, err := codes.Generate(codes.BatchPrefix)

		// Then
		require.NoError(t, err)
		assert.Regexp(t, `^BAT-\d{8}-[A-Z0-9]{5}$`, code)
		assert.Contains(t, code, time.Now().UTC().Format("20060102"))
	})

	t.Run("successive_codes_differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := codes.Generate(codes.OrderPrefix)
			require.NoError(t, err)
			seen[code] = true
		}
		// 50 random 5-char suffixes colliding down to a handful is
		// effectively impossible.
		assert.Greater(t, len(seen), 45)
	})
}
