// Package shipment contains the Shipment aggregate: a delivery from the
// central kitchen against a single order.
//
// Shipments move through a strict state machine (pending, preparing,
// shipping, delivered, cancelled) with timestamp side effects on entry to
// shipping, delivered, and cancelled. Shipment lines reference the order
// line they fulfill and optionally the inventory batch they were drawn
// from, which is the basis for batch-level tracing.
package shipment
