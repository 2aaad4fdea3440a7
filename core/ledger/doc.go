// Package ledger implements the append-only inventory ledger and the item
// lifecycle state machine.
//
// It owns two tables, products by id and items by id, plus the monotonic id
// counters, and is the sole mutator of both. Every product carries two layers
// of accounting that the ledger keeps in lockstep:
//
//  1. Per-variant remaining stock, one counter per variant label.
//  2. Four aggregate unit buckets: available, reserved, sold and shipped.
//
// Minting an item consumes one unit of stock per matched variant label and
// adds one unit to the available bucket. Lifecycle operations then move that
// unit forward, one bucket at a time:
//
//	Minted(available) → Ready(available) → Bidded(reserved) → Sold(sold) → Shipped(shipped)
//
// Burning an item releases exactly the bucket its state occupies and restores
// the per-variant stock it consumed at mint, so for any product the bucket
// sum only ever changes by mint (+1) or burn (-1).
//
// # Batch semantics
//
// The lifecycle operations accept parallel id/flag slices and are
// all-or-nothing: every element is validated against a staged view of the
// affected items and buckets before any mutation is committed, so a single
// ineligible element rejects the whole batch with no partial writes. The
// staged view also accounts for consumption within the batch itself; two
// bids against a product with one available unit fail as a unit.
//
// # Concurrency
//
// A single mutex serializes all operations. No operation blocks or retries;
// failures are synchronous and leave the ledger unchanged.
package ledger
