// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates.
//
// FulfillmentResolver derives an order's fulfillment value from the
// shipping progress of its lines. It is used both inside shipment write
// transactions and by the periodic reconciliation sweep.
package services
