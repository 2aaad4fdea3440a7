// Package items exposes the serialized-unit surface: minting units out of
// catalog stock, administrative updates, owner lookups against the asset
// registry and burning. Free-form metadata documents ride along in object
// storage; the ledger only keeps the reference.
package items
