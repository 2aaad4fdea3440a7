package ledger_test

import (
	"errors"
	"testing"

	"supply-ledger/core/ledger"
	"supply-ledger/core/registry"
	"supply-ledger/core/registry/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mintTagged mints one chipped and digitized item of the seed product.
func mintTagged(t *testing.T, l *ledger.Ledger, pid uint64, labels ...string) uint64 {
	t.Helper()
	if len(labels) == 0 {
		labels = []string{"S", "red"}
	}
	id, err := l.MintItem(t.Context(), ledger.MintRequest{
		ProductID: pid,
		Variants:  labels,
		Chipped:   true,
		Digitized: true,
	})
	require.NoError(t, err)
	return id
}

func inventoryOf(t *testing.T, l *ledger.Ledger, pid uint64) ledger.Inventory {
	t.Helper()
	p, err := l.GetProduct(pid)
	require.NoError(t, err)
	return p.Inventory
}

func TestLifecycle_FullWalk(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id := mintTagged(t, l, pid)

	require.NoError(t, l.ReadyForAuction([]uint64{id}))
	assert.Equal(t, ledger.Inventory{Available: 1}, inventoryOf(t, l, pid))

	require.NoError(t, l.SetBidStatus([]uint64{id}, []bool{true}))
	assert.Equal(t, ledger.Inventory{Reserved: 1}, inventoryOf(t, l, pid))

	require.NoError(t, l.SetSaleStatus([]uint64{id}, []bool{true}))
	assert.Equal(t, ledger.Inventory{Sold: 1}, inventoryOf(t, l, pid))

	require.NoError(t, l.SetShippingStatus([]uint64{id}, []bool{true}))
	assert.Equal(t, ledger.Inventory{Shipped: 1}, inventoryOf(t, l, pid))

	it, err := l.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, ledger.StateShipped, it.State)
	assert.Equal(t, ledger.LocationTransit, it.Location)
	assert.True(t, it.CanAuction())
	assert.True(t, it.HasBid())
	assert.True(t, it.IsSold())
	assert.True(t, it.IsShipped())

	require.NoError(t, l.SetDeliveryStatus([]uint64{id}, []bool{true}))
	it, err = l.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, ledger.LocationBuyer, it.Location)
	// Delivery never moves buckets.
	assert.Equal(t, ledger.Inventory{Shipped: 1}, inventoryOf(t, l, pid))

	// A false flag models return-to-transit, not a failure.
	require.NoError(t, l.SetDeliveryStatus([]uint64{id}, []bool{false}))
	it, err = l.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, ledger.LocationTransit, it.Location)
}

func TestReadyForAuction(t *testing.T) {
	t.Run("Requires chip and digitization", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id, err := l.MintItem(t.Context(), ledger.MintRequest{
			ProductID: pid,
			Variants:  []string{"S", "red"},
			Chipped:   true,
			Digitized: false,
		})
		require.NoError(t, err)

		err = l.ReadyForAuction([]uint64{id})
		assert.ErrorIs(t, err, ledger.ErrIneligibleTransition)
	})

	t.Run("Rejects items past minted", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id := mintTagged(t, l, pid)
		require.NoError(t, l.ReadyForAuction([]uint64{id}))

		assert.ErrorIs(t, l.ReadyForAuction([]uint64{id}), ledger.ErrIneligibleTransition)
	})

	t.Run("Unknown item", func(t *testing.T) {
		l := newTestLedger()
		assert.ErrorIs(t, l.ReadyForAuction([]uint64{5}), ledger.ErrItemNotFound)
	})
}

func TestLifecycle_Ordering(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id := mintTagged(t, l, pid)

	// Sale before bid must fail and leave the buckets alone.
	err := l.SetSaleStatus([]uint64{id}, []bool{true})
	assert.ErrorIs(t, err, ledger.ErrIneligibleTransition)
	assert.Equal(t, ledger.Inventory{Available: 1}, inventoryOf(t, l, pid))

	// Shipping before sale likewise.
	err = l.SetShippingStatus([]uint64{id}, []bool{true})
	assert.ErrorIs(t, err, ledger.ErrIneligibleTransition)

	// Bid before readiness likewise.
	err = l.SetBidStatus([]uint64{id}, []bool{true})
	assert.ErrorIs(t, err, ledger.ErrIneligibleTransition)

	// Delivery of an unshipped item likewise.
	err = l.SetDeliveryStatus([]uint64{id}, []bool{true})
	assert.ErrorIs(t, err, ledger.ErrIneligibleTransition)
}

func TestLifecycle_Parity(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id1 := mintTagged(t, l, pid)
	id2 := mintTagged(t, l, pid, "M", "blue")
	require.NoError(t, l.ReadyForAuction([]uint64{id1, id2}))

	err := l.SetBidStatus([]uint64{id1, id2}, []bool{true})
	assert.ErrorIs(t, err, ledger.ErrParity)
	assert.Equal(t, ledger.Inventory{Available: 2}, inventoryOf(t, l, pid))

	assert.ErrorIs(t, l.SetDeliveryStatus([]uint64{id1}, nil), ledger.ErrParity)
}

func TestLifecycle_BatchAtomicity(t *testing.T) {
	t.Run("One ineligible element rejects the batch", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id1 := mintTagged(t, l, pid)
		id2 := mintTagged(t, l, pid, "M", "blue")
		id3 := mintTagged(t, l, pid, "S", "red")
		require.NoError(t, l.ReadyForAuction([]uint64{id1, id2}))
		// id3 was never readied.

		err := l.SetBidStatus([]uint64{id1, id2, id3}, []bool{true, true, true})
		require.ErrorIs(t, err, ledger.ErrIneligibleTransition)

		assert.Equal(t, ledger.Inventory{Available: 3}, inventoryOf(t, l, pid))
		for _, id := range []uint64{id1, id2} {
			it, err := l.GetItem(id)
			require.NoError(t, err)
			assert.Equal(t, ledger.StateReady, it.State)
		}
	})

	t.Run("False flag rejects the batch", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id1 := mintTagged(t, l, pid)
		id2 := mintTagged(t, l, pid, "M", "blue")
		require.NoError(t, l.ReadyForAuction([]uint64{id1, id2}))

		err := l.SetBidStatus([]uint64{id1, id2}, []bool{true, false})
		require.ErrorIs(t, err, ledger.ErrIneligibleTransition)
		assert.Equal(t, ledger.Inventory{Available: 2}, inventoryOf(t, l, pid))
	})

	t.Run("Duplicate id is charged within the batch", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id := mintTagged(t, l, pid)
		require.NoError(t, l.ReadyForAuction([]uint64{id}))

		// The staged view sees the first element consume the transition, so
		// the duplicate is ineligible and nothing commits.
		err := l.SetBidStatus([]uint64{id, id}, []bool{true, true})
		require.ErrorIs(t, err, ledger.ErrIneligibleTransition)

		it, err := l.GetItem(id)
		require.NoError(t, err)
		assert.Equal(t, ledger.StateReady, it.State)
		assert.Equal(t, ledger.Inventory{Available: 1}, inventoryOf(t, l, pid))
	})
}

func TestLifecycle_Conservation(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id1 := mintTagged(t, l, pid)
	id2 := mintTagged(t, l, pid, "M", "blue")

	total := func() uint64 { return inventoryOf(t, l, pid).Total() }
	assert.Equal(t, uint64(2), total())

	require.NoError(t, l.ReadyForAuction([]uint64{id1, id2}))
	require.NoError(t, l.SetBidStatus([]uint64{id1, id2}, []bool{true, true}))
	assert.Equal(t, uint64(2), total())

	require.NoError(t, l.SetSaleStatus([]uint64{id1}, []bool{true}))
	assert.Equal(t, uint64(2), total())

	require.NoError(t, l.Burn(t.Context(), id2))
	assert.Equal(t, uint64(1), total())

	require.NoError(t, l.SetShippingStatus([]uint64{id1}, []bool{true}))
	assert.Equal(t, uint64(1), total())
}

func TestBurn_PerBucket(t *testing.T) {
	advanceTo := func(t *testing.T, l *ledger.Ledger, id uint64, target ledger.State) {
		t.Helper()
		if target >= ledger.StateReady {
			require.NoError(t, l.ReadyForAuction([]uint64{id}))
		}
		if target >= ledger.StateBidded {
			require.NoError(t, l.SetBidStatus([]uint64{id}, []bool{true}))
		}
		if target >= ledger.StateSold {
			require.NoError(t, l.SetSaleStatus([]uint64{id}, []bool{true}))
		}
		if target >= ledger.StateShipped {
			require.NoError(t, l.SetShippingStatus([]uint64{id}, []bool{true}))
		}
	}

	states := []ledger.State{
		ledger.StateMinted,
		ledger.StateReady,
		ledger.StateBidded,
		ledger.StateSold,
		ledger.StateShipped,
	}
	for _, state := range states {
		t.Run(state.String(), func(t *testing.T) {
			l := newTestLedger()
			pid := seedProduct(t, l)
			id := mintTagged(t, l, pid)
			advanceTo(t, l, id, state)

			require.NoError(t, l.Burn(t.Context(), id))

			p, err := l.GetProduct(pid)
			require.NoError(t, err)
			assert.Equal(t, ledger.Inventory{}, p.Inventory)
			assert.Equal(t, []uint64{2, 1, 0, 2, 1}, p.Quantities)
		})
	}
}

func TestBurn_Failures(t *testing.T) {
	t.Run("Unknown item", func(t *testing.T) {
		l := newTestLedger()
		assert.ErrorIs(t, l.Burn(t.Context(), 9), ledger.ErrItemNotFound)
	})

	t.Run("Stale variant labels", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		id := mintTagged(t, l, pid)

		// Replacing the labels out from under a live item leaves it
		// unburnable until migrated.
		require.NoError(t, l.UpdateProduct(pid, "Shirt", []string{"XS", "XL"}, []uint64{1, 1}))

		err := l.Burn(t.Context(), id)
		assert.ErrorIs(t, err, ledger.ErrVariantMismatch)
	})

	t.Run("Registry failure leaves ledger unchanged", func(t *testing.T) {
		assets := new(mocks.AssetRegistry)
		assets.On("Mint", mock.Anything, "operator", uint64(1)).Return(nil)
		assets.On("Burn", mock.Anything, uint64(1)).Return(errors.New("registry down"))

		l := ledger.New(assets, "operator")
		pid := seedProduct(t, l)
		id := mintTagged(t, l, pid)

		require.Error(t, l.Burn(t.Context(), id))

		it, err := l.GetItem(id)
		require.NoError(t, err)
		assert.Equal(t, ledger.StateMinted, it.State)
		assert.Equal(t, ledger.Inventory{Available: 1}, inventoryOf(t, l, pid))
	})
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id := mintTagged(t, l, pid)
	require.NoError(t, l.ReadyForAuction([]uint64{id}))
	require.NoError(t, l.SetBidStatus([]uint64{id}, []bool{true}))

	snap := l.Snapshot()

	restored := ledger.New(registry.NewInMemory(), "operator")
	require.NoError(t, restored.Restore(snap))

	p, err := restored.GetProduct(pid)
	require.NoError(t, err)
	assert.Equal(t, ledger.Inventory{Reserved: 1}, p.Inventory)

	it, err := restored.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, ledger.StateBidded, it.State)

	assert.Equal(t, l.NextProductID(), restored.NextProductID())
	assert.Equal(t, l.NextItemID(), restored.NextItemID())
}
