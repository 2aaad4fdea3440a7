package ledger

import "errors"

// Sentinel errors for the ledger. Callers match them with errors.Is;
// every failure is detected before any mutation, so a returned error
// always means the ledger is unchanged.
var (
	// ErrProductNotFound is returned for an unknown product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound is returned for an unknown item id.
	ErrItemNotFound = errors.New("item not found")

	// ErrParity is returned when parallel input slices differ in length.
	ErrParity = errors.New("parallel input lengths differ")

	// ErrInvalidInventoryCount is returned when per-dimension stock totals
	// are inconsistent at product creation or update.
	ErrInvalidInventoryCount = errors.New("inconsistent per-dimension stock")

	// ErrVariantMismatch is returned when a requested label has no matching
	// slot on the product, or labels do not cover each dimension exactly once.
	ErrVariantMismatch = errors.New("variant label not found on product")

	// ErrCapacityExceeded is returned when an operation would drive a stock
	// or bucket counter below zero.
	ErrCapacityExceeded = errors.New("inventory counter exhausted")

	// ErrIneligibleTransition is returned when an item is not in the state a
	// lifecycle transition requires.
	ErrIneligibleTransition = errors.New("item not eligible for transition")
)
