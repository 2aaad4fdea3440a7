// Package lifecycle exposes the batch state transitions of items: clearing
// for auction, recording bids, sales, shipping and delivery. Each batch is
// applied all-or-nothing; a single ineligible item rejects the whole batch.
package lifecycle
