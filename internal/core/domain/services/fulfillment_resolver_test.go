package services_test

import (
	"testing"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestFulfillmentResolver_Resolve(t *testing.T) {
	resolver := services.NewFulfillmentResolver()

	testCases := []struct {
		name     string
		items    []services.ItemProgress
		expected order.Fulfillment
	}{
		{
			name:     "no_items_resolves_to_processing",
			items:    nil,
			expected: order.FulfillmentProcessing,
		},
		{
			name: "nothing_shipped_resolves_to_processing",
			items: []services.ItemProgress{
				{Ordered: 10, Shipped: 0},
				{Ordered: 4, Shipped: 0},
			},
			expected: order.FulfillmentProcessing,
		},
		{
			name: "some_shipped_resolves_to_partially_fulfilled",
			items: []services.ItemProgress{
				{Ordered: 10, Shipped: 10},
				{Ordered: 4, Shipped: 0},
			},
			expected: order.FulfillmentPartial,
		},
		{
			name: "partial_line_resolves_to_partially_fulfilled",
			items: []services.ItemProgress{
				{Ordered: 10, Shipped: 3},
			},
			expected: order.FulfillmentPartial,
		},
		{
			name: "every_line_shipped_in_full_resolves_to_fulfilled",
			items: []services.ItemProgress{
				{Ordered: 10, Shipped: 10},
				{Ordered: 4, Shipped: 4},
			},
			expected: order.FulfillmentFulfilled,
		},
		{
			name: "overshipment_still_counts_as_fulfilled",
			items: []services.ItemProgress{
				{Ordered: 10, Shipped: 12},
			},
			expected: order.FulfillmentFulfilled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resolver.Resolve(tc.items))
		})
	}

	t.Run("resolution_is_order_independent", func(t *testing.T) {
		forward := []services.ItemProgress{
			{Ordered: 10, Shipped: 10},
			{Ordered: 4, Shipped: 1},
			{Ordered: 7, Shipped: 0},
		}
		reversed := []services.ItemProgress{forward[2], forward[1], forward[0]}

		assert.Equal(t, resolver.Resolve(forward), resolver.Resolve(reversed))
	})
}
