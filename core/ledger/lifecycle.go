package ledger

import (
	"context"
	"fmt"
)

// batchView stages item states and product buckets during batch validation.
// Nothing in the ledger moves until the whole batch validates against the
// view, which also charges consumption within the batch itself.
type batchView struct {
	states map[uint64]State
	invs   map[uint64]Inventory
}

func newBatchView() *batchView {
	return &batchView{
		states: make(map[uint64]State),
		invs:   make(map[uint64]Inventory),
	}
}

func (v *batchView) stateOf(it *Item) State {
	if s, ok := v.states[it.ID]; ok {
		return s
	}
	return it.State
}

func (v *batchView) inventoryOf(p *Product) Inventory {
	if inv, ok := v.invs[p.ID]; ok {
		return inv
	}
	return p.Inventory
}

// ReadyForAuction clears items for auction. Every item must be chipped and
// digitized and still in the minted state; readiness is a precondition for
// bidding, not a bucket movement, so the buckets stay put.
func (l *Ledger) ReadyForAuction(ids []uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	view := newBatchView()
	for _, id := range ids {
		it, ok := l.items[id]
		if !ok {
			return fmt.Errorf("ready for auction: item %d: %w", id, ErrItemNotFound)
		}
		if !it.Chipped || !it.Digitized {
			return fmt.Errorf("ready for auction: item %d not chipped and digitized: %w", id, ErrIneligibleTransition)
		}
		if view.stateOf(it) != StateMinted {
			return fmt.Errorf("ready for auction: item %d is %s: %w", id, view.stateOf(it), ErrIneligibleTransition)
		}
		view.states[id] = StateReady
	}

	for id, s := range view.states {
		l.items[id].State = s
	}
	return nil
}

// SetBidStatus records accepted bids. Each flagged item moves one unit from
// available to reserved on its product.
func (l *Ledger) SetBidStatus(ids []uint64, flags []bool) error {
	return l.advance("set bid status", ids, flags, StateReady, StateBidded, nil)
}

// SetSaleStatus records completed sales. Each flagged item moves one unit
// from reserved to sold on its product.
func (l *Ledger) SetSaleStatus(ids []uint64, flags []bool) error {
	return l.advance("set sale status", ids, flags, StateBidded, StateSold, nil)
}

// SetShippingStatus records shipments. Each flagged item moves one unit from
// sold to shipped on its product and is placed in transit.
func (l *Ledger) SetShippingStatus(ids []uint64, flags []bool) error {
	return l.advance("set shipping status", ids, flags, StateSold, StateShipped, func(it *Item) {
		it.Location = LocationTransit
	})
}

// SetDeliveryStatus records delivery outcomes for shipped items. A true flag
// places the item with the buyer; a false flag returns it to transit. No
// bucket moves either way.
func (l *Ledger) SetDeliveryStatus(ids []uint64, flags []bool) error {
	if len(ids) != len(flags) {
		return fmt.Errorf("set delivery status: %d ids, %d flags: %w", len(ids), len(flags), ErrParity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range ids {
		it, ok := l.items[id]
		if !ok {
			return fmt.Errorf("set delivery status: item %d: %w", id, ErrItemNotFound)
		}
		if it.State != StateShipped {
			return fmt.Errorf("set delivery status: item %d is %s: %w", id, it.State, ErrIneligibleTransition)
		}
	}

	for i, id := range ids {
		if flags[i] {
			l.items[id].Location = LocationBuyer
		} else {
			l.items[id].Location = LocationTransit
		}
	}
	return nil
}

// advance runs one forward transition of the state machine over a batch.
// The whole batch is validated against a staged view before anything is
// committed; the first ineligible element rejects the entire call.
func (l *Ledger) advance(op string, ids []uint64, flags []bool, from, to State, hook func(*Item)) error {
	if len(ids) != len(flags) {
		return fmt.Errorf("%s: %d ids, %d flags: %w", op, len(ids), len(flags), ErrParity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	view := newBatchView()
	for i, id := range ids {
		it, ok := l.items[id]
		if !ok {
			return fmt.Errorf("%s: item %d: %w", op, id, ErrItemNotFound)
		}
		if !flags[i] {
			return fmt.Errorf("%s: item %d flag not set: %w", op, id, ErrIneligibleTransition)
		}
		if view.stateOf(it) != from {
			return fmt.Errorf("%s: item %d is %s, want %s: %w", op, id, view.stateOf(it), from, ErrIneligibleTransition)
		}

		p, ok := l.products[it.ProductID]
		if !ok {
			return fmt.Errorf("%s: item %d: product %d: %w", op, id, it.ProductID, ErrProductNotFound)
		}
		inv := view.inventoryOf(p)
		if err := inv.move(from.bucket(), to.bucket()); err != nil {
			return fmt.Errorf("%s: item %d: %w", op, id, err)
		}
		view.invs[p.ID] = inv
		view.states[id] = to
	}

	for id, s := range view.states {
		it := l.items[id]
		it.State = s
		if hook != nil {
			hook(it)
		}
	}
	for pid, inv := range view.invs {
		l.products[pid].Inventory = inv
	}
	return nil
}

// Burn destroys an item. It releases exactly the bucket the item's state
// occupies, restores the per-variant stock consumed at mint, and burns the
// identifier in the asset registry. The empty-bucket check guards against
// a desynchronized ledger; hitting it means corruption, not user error.
func (l *Ledger) Burn(ctx context.Context, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[id]
	if !ok {
		return fmt.Errorf("burn: item %d: %w", id, ErrItemNotFound)
	}
	p, ok := l.products[it.ProductID]
	if !ok {
		return fmt.Errorf("burn: item %d: product %d: %w", id, it.ProductID, ErrProductNotFound)
	}

	bucket := it.State.bucket()
	if p.Inventory.Count(bucket) == 0 {
		return fmt.Errorf("burn: item %d occupies empty bucket %s: %w", id, bucket, ErrCapacityExceeded)
	}
	slots, err := matchLabels(p, it.Variants)
	if err != nil {
		return fmt.Errorf("burn: item %d: %w", id, err)
	}

	if err := l.assets.Burn(ctx, id); err != nil {
		return fmt.Errorf("burn: item %d: asset registry: %w", id, err)
	}

	if err := p.Inventory.release(bucket); err != nil {
		return fmt.Errorf("burn: item %d: %w", id, err)
	}
	for _, slot := range slots {
		p.Quantities[slot]++
	}
	delete(l.items, id)
	return nil
}
