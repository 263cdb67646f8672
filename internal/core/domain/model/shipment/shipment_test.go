package shipment_test

import (
	"testing"
	"time"

	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func makeShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	item, err := shipment.NewItem(10, int64Ptr(5), 6, "")
	require.NoError(t, err)

	s, err := shipment.NewShipment("SHP-20250115-AAAAA", 1, "Sam Driver", "555-0100", "", []*shipment.Item{item})
	require.NoError(t, err)
	return s
}

func TestNewItem(t *testing.T) {
	t.Run("creates_valid_item", func(t *testing.T) {
		// When
		item, err := shipment.NewItem(10, int64Ptr(5), 6, "keep chilled")

		// Then
		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.Equal(t, int64(10), item.OrderItemID())
		require.NotNil(t, item.BatchID())
		assert.Equal(t, int64(5), *item.BatchID())
		assert.Equal(t, 6, item.Quantity())
		assert.Equal(t, "keep chilled", item.Note())
	})

	t.Run("batch_reference_is_optional", func(t *testing.T) {
		item, err := shipment.NewItem(10, nil, 6, "")
		require.NoError(t, err)
		assert.Nil(t, item.BatchID())
	})

	t.Run("rejects_missing_order_item", func(t *testing.T) {
		_, err := shipment.NewItem(0, nil, 6, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_batch_reference", func(t *testing.T) {
		_, err := shipment.NewItem(10, int64Ptr(0), 6, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := shipment.NewItem(10, nil, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewShipment(t *testing.T) {
	t.Run("creates_pending_shipment", func(t *testing.T) {
		// When
		s := makeShipment(t)

		// Then
		assert.NoError(t, s.Validate())
		assert.Equal(t, "SHP-20250115-AAAAA", s.Code())
		assert.Equal(t, int64(1), s.OrderID())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.ShippedAt())
		assert.Nil(t, s.DeliveredAt())
		assert.Len(t, s.Items(), 1)
	})

	t.Run("items_may_be_empty_at_creation", func(t *testing.T) {
		s, err := shipment.NewShipment("SHP-20250115-BBBBB", 1, "", "", "", nil)
		require.NoError(t, err)
		assert.Empty(t, s.Items())
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := shipment.NewShipment("", 1, "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_order", func(t *testing.T) {
		_, err := shipment.NewShipment("SHP-20250115-BBBBB", 0, "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_shipment_fails_validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)

	t.Run("full_happy_path_stamps_timestamps", func(t *testing.T) {
		// Given
		s := makeShipment(t)

		// When / Then
		require.NoError(t, s.ChangeStatus(shipment.Preparing, now))
		assert.Nil(t, s.ShippedAt())

		shipTime := now.Add(2 * time.Hour)
		require.NoError(t, s.ChangeStatus(shipment.Shipping, shipTime))
		require.NotNil(t, s.ShippedAt())
		assert.Equal(t, shipTime, *s.ShippedAt())
		assert.Nil(t, s.DeliveredAt())

		deliverTime := now.Add(5 * time.Hour)
		require.NoError(t, s.ChangeStatus(shipment.Delivered, deliverTime))
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, deliverTime, *s.DeliveredAt())
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("cancellation_clears_timestamps", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Preparing, now))

		// When
		require.NoError(t, s.ChangeStatus(shipment.Cancelled, now))

		// Then
		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Nil(t, s.ShippedAt())
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("illegal_transition_changes_nothing", func(t *testing.T) {
		// Given
		s := makeShipment(t)

		// When
		err := s.ChangeStatus(shipment.Delivered, now)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("terminal_states_accept_no_transitions", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Cancelled, now))

		// When
		err := s.ChangeStatus(shipment.Preparing, now)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Cancelled, s.Status())
	})
}

func TestShipment_UpdateDetails(t *testing.T) {
	t.Run("updates_non_terminal_shipment", func(t *testing.T) {
		// Given
		s := makeShipment(t)

		// When
		err := s.UpdateDetails("Alex Carrier", "555-0199", "call on arrival")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Alex Carrier", s.DriverName())
		assert.Equal(t, "555-0199", s.DriverPhone())
		assert.Equal(t, "call on arrival", s.Notes())
	})

	t.Run("rejects_edits_on_terminal_shipment", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		now := time.Now()
		require.NoError(t, s.ChangeStatus(shipment.Preparing, now))
		require.NoError(t, s.ChangeStatus(shipment.Shipping, now))
		require.NoError(t, s.ChangeStatus(shipment.Delivered, now))

		// When
		err := s.UpdateDetails("Alex Carrier", "", "")

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Sam Driver", s.DriverName())
	})
}

func TestShipment_AddItem(t *testing.T) {
	t.Run("adds_item_while_pending", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		item, err := shipment.NewItem(11, nil, 2, "")
		require.NoError(t, err)

		// When
		err = s.AddItem(item)

		// Then
		require.NoError(t, err)
		assert.Len(t, s.Items(), 2)
	})

	t.Run("adds_item_while_preparing", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Preparing, time.Now()))
		item, err := shipment.NewItem(11, nil, 2, "")
		require.NoError(t, err)

		// Then
		require.NoError(t, s.AddItem(item))
	})

	t.Run("rejects_items_once_shipping", func(t *testing.T) {
		// Given
		s := makeShipment(t)
		now := time.Now()
		require.NoError(t, s.ChangeStatus(shipment.Preparing, now))
		require.NoError(t, s.ChangeStatus(shipment.Shipping, now))
		item, err := shipment.NewItem(11, nil, 2, "")
		require.NoError(t, err)

		// When
		err = s.AddItem(item)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Len(t, s.Items(), 1)
	})
}

func TestShipment_FindItem(t *testing.T) {
	t.Run("finds_restored_item_by_id", func(t *testing.T) {
		// Given
		item, err := shipment.RestoreItem(33, 10, nil, 6, "")
		require.NoError(t, err)
		s, err := shipment.RestoreShipment(
			7, "SHP-20250110-CCCCC", 1, "", "", "",
			shipment.Preparing, nil, nil, []*shipment.Item{item},
		)
		require.NoError(t, err)

		// When
		found, err := s.FindItem(33)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(33), found.ID())
	})

	t.Run("missing_item_returns_not_found", func(t *testing.T) {
		s := makeShipment(t)

		_, err := s.FindItem(999)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		// Given
		shippedAt := time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC)

		// When
		s, err := shipment.RestoreShipment(
			7, "SHP-20250110-CCCCC", 1, "Sam Driver", "555-0100", "",
			shipment.Shipping, &shippedAt, nil, nil,
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(7), s.ID())
		assert.Equal(t, shipment.Shipping, s.Status())
		require.NotNil(t, s.ShippedAt())
		assert.Equal(t, shippedAt, *s.ShippedAt())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			7, "SHP-20250110-CCCCC", 1, "", "", "",
			shipment.Unknown, nil, nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
