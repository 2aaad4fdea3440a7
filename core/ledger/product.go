package ledger

import (
	"fmt"

	"supply-ledger/core/variant"
)

// CreateProduct adds a catalog entry and returns its id. The buckets start
// empty; stock only enters them through mint.
func (l *Ledger) CreateProduct(name string, variants []string, quantities []uint64) (uint64, error) {
	if len(variants) != len(quantities) {
		return 0, fmt.Errorf("create product: %d variants, %d quantities: %w", len(variants), len(quantities), ErrParity)
	}
	if err := checkDimensionStock(variants, quantities); err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextProductID
	l.nextProductID++
	l.products[id] = &Product{
		ID:         id,
		Name:       name,
		Variants:   append([]string(nil), variants...),
		Quantities: append([]uint64(nil), quantities...),
	}
	return id, nil
}

// UpdateProduct replaces a product's name, variant labels and per-variant
// stock wholesale. The inventory buckets are untouched, and outstanding
// items are not reconciled against the new labels: callers replacing labels
// that live items still reference must migrate those items separately.
func (l *Ledger) UpdateProduct(id uint64, name string, variants []string, quantities []uint64) error {
	if len(variants) != len(quantities) {
		return fmt.Errorf("update product %d: %d variants, %d quantities: %w", id, len(variants), len(quantities), ErrParity)
	}
	if err := checkDimensionStock(variants, quantities); err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[id]
	if !ok {
		return fmt.Errorf("update product %d: %w", id, ErrProductNotFound)
	}
	p.Name = name
	p.Variants = append([]string(nil), variants...)
	p.Quantities = append([]uint64(nil), quantities...)
	return nil
}

// checkDimensionStock validates that the label list and its quantities
// describe a consistent stock: separator slots carry no stock, and every
// dimension accounts for the same total number of units, since each physical
// unit consumes exactly one label per dimension.
func checkDimensionStock(variants []string, quantities []uint64) error {
	for i, label := range variants {
		if variant.IsSeparator(label) && quantities[i] != 0 {
			return fmt.Errorf("separator slot %d carries stock: %w", i, ErrInvalidInventoryCount)
		}
	}

	dims := variant.Dimensions(variants)
	var want uint64
	for d, group := range dims {
		var sum uint64
		for _, i := range group {
			sum += quantities[i]
		}
		if d == 0 {
			want = sum
			continue
		}
		if sum != want {
			return fmt.Errorf("dimension %d holds %d units, dimension 0 holds %d: %w", d, sum, want, ErrInvalidInventoryCount)
		}
	}
	return nil
}
