package ledger

import (
	"context"
	"fmt"

	"supply-ledger/core/variant"

	"github.com/shopspring/decimal"
)

// MintRequest carries the fields of a new item.
type MintRequest struct {
	ProductID   uint64
	Variants    []string
	Price       decimal.Decimal
	Location    Location
	Chipped     bool
	Digitized   bool
	MetadataRef string
}

// MintItem creates one serialized unit of a product. It consumes one unit of
// stock from each matched variant slot, adds one unit to the product's
// available bucket and registers the new identifier with the asset registry
// under the operator identity.
//
// Validation of every requested label completes before any counter moves;
// a failing label leaves all stock untouched.
func (l *Ledger) MintItem(ctx context.Context, req MintRequest) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[req.ProductID]
	if !ok {
		return 0, fmt.Errorf("mint: product %d: %w", req.ProductID, ErrProductNotFound)
	}

	slots, err := matchLabels(p, req.Variants)
	if err != nil {
		return 0, fmt.Errorf("mint: %w", err)
	}
	for _, slot := range slots {
		if p.Quantities[slot] == 0 {
			return 0, fmt.Errorf("mint: label %q out of stock: %w", p.Variants[slot], ErrCapacityExceeded)
		}
	}

	id := l.nextItemID
	if err := l.assets.Mint(ctx, l.operator, id); err != nil {
		return 0, fmt.Errorf("mint: asset registry: %w", err)
	}

	for _, slot := range slots {
		p.Quantities[slot]--
	}
	p.Inventory.Available++
	l.nextItemID++
	l.items[id] = &Item{
		ID:          id,
		ProductID:   req.ProductID,
		Owner:       l.operator,
		Variants:    append([]string(nil), req.Variants...),
		Price:       req.Price,
		Location:    req.Location,
		Chipped:     req.Chipped,
		Digitized:   req.Digitized,
		State:       StateMinted,
		MetadataRef: req.MetadataRef,
	}
	return id, nil
}

// UpdateItem is the administrative update: price, location and the operator
// set attributes. Lifecycle state and buckets are out of its reach.
func (l *Ledger) UpdateItem(id uint64, price decimal.Decimal, location Location, chipped, digitized bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[id]
	if !ok {
		return fmt.Errorf("update item %d: %w", id, ErrItemNotFound)
	}
	it.Price = price
	it.Location = location
	it.Chipped = chipped
	it.Digitized = digitized
	return nil
}

// RefreshOwner re-reads the canonical holder from the asset registry and
// updates the item's cached copy.
func (l *Ledger) RefreshOwner(ctx context.Context, id uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[id]
	if !ok {
		return "", fmt.Errorf("refresh owner %d: %w", id, ErrItemNotFound)
	}
	owner, err := l.assets.OwnerOf(ctx, id)
	if err != nil {
		return "", fmt.Errorf("refresh owner %d: asset registry: %w", id, err)
	}
	it.Owner = owner
	return owner, nil
}

// matchLabels resolves each requested label to its slot on the product and
// checks the labels cover every dimension exactly once. It performs no
// stock checks and no mutation.
func matchLabels(p *Product, labels []string) ([]int, error) {
	dims := variant.Dimensions(p.Variants)
	if len(labels) != len(dims) {
		return nil, fmt.Errorf("want one label per dimension, got %d labels for %d dimensions: %w", len(labels), len(dims), ErrVariantMismatch)
	}

	seen := make([]bool, len(dims))
	slots := make([]int, 0, len(labels))
	for _, label := range labels {
		slot, ok := variant.MatchSlot(p.Variants, label)
		if !ok {
			return nil, fmt.Errorf("label %q: %w", label, ErrVariantMismatch)
		}
		d := variant.DimensionOf(dims, slot)
		if d < 0 || seen[d] {
			return nil, fmt.Errorf("label %q repeats a dimension: %w", label, ErrVariantMismatch)
		}
		seen[d] = true
		slots = append(slots, slot)
	}
	return slots, nil
}
