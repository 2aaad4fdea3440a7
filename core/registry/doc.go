// Package registry defines the client interface to the external unique-asset
// registry that holds the canonical ownership record for every item
// identifier the ledger allocates.
//
// The ledger mints an identifier into the registry when an item is created,
// burns it when the item is destroyed, and treats OwnerOf as the single
// source of truth for the current holder. Any owner value stored on an item
// record is a convenience cache only.
//
// An in-memory implementation is provided for single-process deployments and
// tests; a testify mock lives under registry/mocks.
package registry
