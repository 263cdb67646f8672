package shipment_test

import (
	"testing"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.Pending, shipment.Preparing, shipment.Shipping,
			shipment.Delivered, shipment.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.Unknown, shipment.Status(99)} {
			require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.Pending, shipment.Preparing, shipment.Shipping,
			shipment.Delivered, shipment.Cancelled,
		} {
			parsed, err := shipment.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := shipment.StatusFromString("in_transit")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	legal := []struct {
		from, to shipment.Status
	}{
		{shipment.Pending, shipment.Preparing},
		{shipment.Pending, shipment.Cancelled},
		{shipment.Preparing, shipment.Shipping},
		{shipment.Preparing, shipment.Cancelled},
		{shipment.Shipping, shipment.Delivered},
	}

	t.Run("legal_transitions", func(t *testing.T) {
		for _, tc := range legal {
			got, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, got)
		}
	})

	t.Run("illegal_transitions_are_rejected", func(t *testing.T) {
		illegal := []struct {
			from, to shipment.Status
		}{
			{shipment.Pending, shipment.Shipping},
			{shipment.Pending, shipment.Delivered},
			{shipment.Preparing, shipment.Delivered},
			{shipment.Preparing, shipment.Pending},
			{shipment.Shipping, shipment.Cancelled},
			{shipment.Shipping, shipment.Pending},
			{shipment.Delivered, shipment.Shipping},
			{shipment.Delivered, shipment.Cancelled},
			{shipment.Cancelled, shipment.Pending},
			{shipment.Cancelled, shipment.Preparing},
		}

		for _, tc := range illegal {
			_, err := tc.from.TransitionTo(tc.to)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("invalid_target_is_rejected", func(t *testing.T) {
		_, err := shipment.Pending.TransitionTo(shipment.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.False(t, shipment.Pending.IsTerminal())
	assert.False(t, shipment.Preparing.IsTerminal())
	assert.False(t, shipment.Shipping.IsTerminal())
}

func TestStatus_AllowsItemEdits(t *testing.T) {
	assert.True(t, shipment.Pending.AllowsItemEdits())
	assert.True(t, shipment.Preparing.AllowsItemEdits())
	assert.False(t, shipment.Shipping.AllowsItemEdits())
	assert.False(t, shipment.Delivered.AllowsItemEdits())
	assert.False(t, shipment.Cancelled.AllowsItemEdits())
}
