// Package order contains the Order aggregate: a franchise store's request
// for goods from the central kitchen.
//
// An order carries a business code, the submitting store and user, a set of
// lines with unit-price snapshots, an advisory lifecycle Status, and a
// derived Fulfillment value maintained by the fulfillment reconciliation
// service. Content edits are allowed only while the order is pending;
// everything after that is driven by shipments.
package order
