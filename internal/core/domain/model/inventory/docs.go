// Package inventory contains the Batch aggregate: a dated production batch
// of one product that shipment lines draw stock from. Stock bookkeeping is
// strict in both directions: consumption can never drive a batch negative,
// and restocking can never exceed what the batch was produced with.
package inventory
