// Package audit verifies a ledger snapshot against its own invariants and
// against the external asset registry.
//
// It reconciles three views of the same stock:
//
//  1. The bucket counters recorded on each product.
//  2. The buckets derived from the states of the live items.
//  3. The ownership record held by the asset registry.
//
// A clean report means every product's counters match the item population
// bucket for bucket, every item's product exists, and every cached owner
// matches the registry. The auditor never mutates anything; it reports.
package audit
