package services

import (
	"ckms/internal/core/domain/model/order"
)

// ItemProgress pairs an order line's ordered quantity with the total
// quantity already shipped against it, excluding lines of cancelled
// shipments. The caller computes the shipped sums; the resolver only
// derives the verdict.
type ItemProgress struct {
	Ordered int
	Shipped int
}

// FulfillmentResolver is a domain service that derives an order's
// fulfillment value from the shipping progress of its lines.
//
// The derivation is a pure function of the multiset of (ordered, shipped)
// pairs: the order of the input does not matter, and no external state is
// consulted.
//
// Rules:
//   - every line shipped in full (shipped >= ordered) -> fulfilled
//   - otherwise, any line with shipped > 0 -> partially_fulfilled
//   - otherwise -> processing
//
// Example usage:
//
//	resolver := services.NewFulfillmentResolver()
//	verdict := resolver.Resolve([]services.ItemProgress{
//	    {Ordered: 10, Shipped: 10},
//	    {Ordered: 4, Shipped: 2},
//	})
//	// verdict == order.FulfillmentPartial
type FulfillmentResolver struct{}

// NewFulfillmentResolver creates a new FulfillmentResolver instance.
func NewFulfillmentResolver() FulfillmentResolver {
	return FulfillmentResolver{}
}

// Resolve derives the fulfillment value for the given line progress.
// An order with no lines resolves to processing; nothing has shipped and
// nothing can.
func (r FulfillmentResolver) Resolve(items []ItemProgress) order.Fulfillment {
	if len(items) == 0 {
		return order.FulfillmentProcessing
	}

	allFulfilled := true
	anyShipped := false
	for _, item := range items {
		if item.Shipped < item.Ordered {
			allFulfilled = false
		}
		if item.Shipped > 0 {
			anyShipped = true
		}
	}

	switch {
	case allFulfilled:
		return order.FulfillmentFulfilled
	case anyShipped:
		return order.FulfillmentPartial
	default:
		return order.FulfillmentProcessing
	}
}
