package ledger

import (
	"fmt"
	"sync"

	"supply-ledger/core/registry"
)

// Ledger owns the product and item tables and is their sole mutator.
// A single mutex serializes all operations.
type Ledger struct {
	mu       sync.Mutex
	assets   registry.AssetRegistry
	operator string

	products map[uint64]*Product
	items    map[uint64]*Item

	nextProductID uint64
	nextItemID    uint64
}

// New creates an empty ledger. New item identifiers are minted into the
// asset registry under the operator identity.
func New(assets registry.AssetRegistry, operator string) *Ledger {
	return &Ledger{
		assets:        assets,
		operator:      operator,
		products:      make(map[uint64]*Product),
		items:         make(map[uint64]*Item),
		nextProductID: 1,
		nextItemID:    1,
	}
}

// GetProduct returns a copy of the product record.
func (l *Ledger) GetProduct(id uint64) (Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return copyProduct(p), nil
}

// GetItem returns a copy of the item record.
func (l *Ledger) GetItem(id uint64) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[id]
	if !ok {
		return Item{}, fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	return copyItem(it), nil
}

// GetItemVariants returns the variant labels an item instantiates.
func (l *Ledger) GetItemVariants(id uint64) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	return append([]string(nil), it.Variants...), nil
}

// NextProductID returns the id the next created product will receive.
func (l *Ledger) NextProductID() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextProductID
}

// NextItemID returns the id the next minted item will receive.
func (l *Ledger) NextItemID() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextItemID
}

// Snapshot captures the complete ledger state for persistence or audit.
type Snapshot struct {
	Products      []Product
	Items         []Item
	NextProductID uint64
	NextItemID    uint64
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot{
		Products:      make([]Product, 0, len(l.products)),
		Items:         make([]Item, 0, len(l.items)),
		NextProductID: l.nextProductID,
		NextItemID:    l.nextItemID,
	}
	for _, p := range l.products {
		snap.Products = append(snap.Products, copyProduct(p))
	}
	for _, it := range l.items {
		snap.Items = append(snap.Items, copyItem(it))
	}
	return snap
}

// Restore replaces the ledger state with a snapshot. Id counters are bumped
// past any restored record so identifiers are never reissued.
func (l *Ledger) Restore(snap Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	products := make(map[uint64]*Product, len(snap.Products))
	for _, p := range snap.Products {
		if len(p.Variants) != len(p.Quantities) {
			return fmt.Errorf("restore product %d: %w", p.ID, ErrParity)
		}
		cp := copyProduct(&p)
		products[p.ID] = &cp
	}

	items := make(map[uint64]*Item, len(snap.Items))
	for _, it := range snap.Items {
		if _, ok := products[it.ProductID]; !ok {
			return fmt.Errorf("restore item %d: product %d: %w", it.ID, it.ProductID, ErrProductNotFound)
		}
		ci := copyItem(&it)
		items[it.ID] = &ci
	}

	l.products = products
	l.items = items
	l.nextProductID = snap.NextProductID
	l.nextItemID = snap.NextItemID
	for id := range products {
		if id >= l.nextProductID {
			l.nextProductID = id + 1
		}
	}
	for id := range items {
		if id >= l.nextItemID {
			l.nextItemID = id + 1
		}
	}
	return nil
}

func copyProduct(p *Product) Product {
	cp := *p
	cp.Variants = append([]string(nil), p.Variants...)
	cp.Quantities = append([]uint64(nil), p.Quantities...)
	return cp
}

func copyItem(it *Item) Item {
	ci := *it
	ci.Variants = append([]string(nil), it.Variants...)
	return ci
}
