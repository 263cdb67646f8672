package order_test

import (
	"testing"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Approved, order.Processing, order.Processed,
			order.Shipping, order.Delivered, order.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("known_values", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "approved", order.Approved.String())
		assert.Equal(t, "processing", order.Processing.String())
		assert.Equal(t, "processed", order.Processed.String())
		assert.Equal(t, "shipping", order.Shipping.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
	})

	t.Run("unknown_values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Approved, order.Processing, order.Processed,
			order.Shipping, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "Pending", "shipped"} {
			_, err := order.StatusFromString(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_AllowsEditing(t *testing.T) {
	t.Run("only_pending_is_editable", func(t *testing.T) {
		assert.True(t, order.Pending.AllowsEditing())

		for _, s := range []order.Status{
			order.Approved, order.Processing, order.Processed,
			order.Shipping, order.Delivered, order.Cancelled,
		} {
			assert.False(t, s.AllowsEditing(), s.String())
		}
	})
}

func TestStatus_AllowsShipmentCreation(t *testing.T) {
	t.Run("only_processing_accepts_new_shipments", func(t *testing.T) {
		assert.True(t, order.Processing.AllowsShipmentCreation())

		for _, s := range []order.Status{
			order.Pending, order.Approved, order.Processed,
			order.Shipping, order.Delivered, order.Cancelled,
		} {
			assert.False(t, s.AllowsShipmentCreation(), s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered_and_cancelled_are_terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Shipping.IsTerminal())
	})
}

func TestFulfillment(t *testing.T) {
	t.Run("string_values", func(t *testing.T) {
		assert.Equal(t, "processing", order.FulfillmentProcessing.String())
		assert.Equal(t, "partially_fulfilled", order.FulfillmentPartial.String())
		assert.Equal(t, "fulfilled", order.FulfillmentFulfilled.String())
		assert.Equal(t, "unknown", order.FulfillmentUnknown.String())
	})

	t.Run("round_trips_valid_values", func(t *testing.T) {
		for _, f := range []order.Fulfillment{
			order.FulfillmentProcessing, order.FulfillmentPartial, order.FulfillmentFulfilled,
		} {
			parsed, err := order.FulfillmentFromString(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})

	t.Run("validate_rejects_unknown", func(t *testing.T) {
		require.Error(t, order.FulfillmentUnknown.Validate())
		require.Error(t, order.Fulfillment(42).Validate())
		assert.NoError(t, order.FulfillmentPartial.Validate())
	})

	t.Run("parse_rejects_unknown_strings", func(t *testing.T) {
		_, err := order.FulfillmentFromString("partial")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
