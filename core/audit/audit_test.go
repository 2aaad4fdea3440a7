package audit_test

import (
	"testing"

	"supply-ledger/core/audit"
	"supply-ledger/core/ledger"
	"supply-ledger/core/registry"
	"supply-ledger/core/variant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLedger(t *testing.T, assets registry.AssetRegistry) (*ledger.Ledger, uint64, uint64) {
	t.Helper()
	l := ledger.New(assets, "operator")
	pid, err := l.CreateProduct("Shirt",
		[]string{"S", "M", variant.Separator, "red", "blue"},
		[]uint64{2, 1, 0, 2, 1})
	require.NoError(t, err)

	id, err := l.MintItem(t.Context(), ledger.MintRequest{
		ProductID: pid,
		Variants:  []string{"S", "red"},
		Chipped:   true,
		Digitized: true,
	})
	require.NoError(t, err)
	return l, pid, id
}

func TestRun_CleanLedger(t *testing.T) {
	assets := registry.NewInMemory()
	l, pid, id := buildLedger(t, assets)
	require.NoError(t, l.ReadyForAuction([]uint64{id}))
	require.NoError(t, l.SetBidStatus([]uint64{id}, []bool{true}))

	report, err := audit.Run(t.Context(), l.Snapshot(), assets)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	require.Len(t, report.Results, 1)
	assert.Equal(t, pid, report.Results[0].ProductID)
	assert.Equal(t, ledger.Inventory{Reserved: 1}, report.Results[0].Derived)
	assert.Empty(t, report.Results[0].Mismatch)
	assert.Equal(t, 1, report.Summary.Items)
}

func TestRun_BucketMismatch(t *testing.T) {
	snap := ledger.Snapshot{
		Products: []ledger.Product{{
			ID:         1,
			Name:       "Shirt",
			Variants:   []string{"S"},
			Quantities: []uint64{1},
			Inventory:  ledger.Inventory{Available: 2},
		}},
		Items: []ledger.Item{{
			ID:        1,
			ProductID: 1,
			Variants:  []string{"S"},
			State:     ledger.StateMinted,
		}},
		NextProductID: 2,
		NextItemID:    2,
	}

	report, err := audit.Run(t.Context(), snap, nil)
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, 1, report.Summary.BucketMismatches)
	require.Len(t, report.Results, 1)
	assert.Equal(t, []string{"available: counter=2 items=1"}, report.Results[0].Mismatch)
}

func TestRun_OrphanedItem(t *testing.T) {
	snap := ledger.Snapshot{
		Items: []ledger.Item{{ID: 4, ProductID: 9, State: ledger.StateMinted}},
	}

	report, err := audit.Run(t.Context(), snap, nil)
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, []uint64{4}, report.Orphaned)
}

func TestRun_OwnershipChecks(t *testing.T) {
	t.Run("Drifted cache", func(t *testing.T) {
		assets := registry.NewInMemory()
		l, _, id := buildLedger(t, assets)

		// Transfer behind the ledger's back; the cached owner is now stale.
		require.NoError(t, assets.Transfer(t.Context(), id, "buyer"))

		report, err := audit.Run(t.Context(), l.Snapshot(), assets)
		require.NoError(t, err)
		assert.False(t, report.Clean())
		require.Len(t, report.Drift, 1)
		assert.Equal(t, id, report.Drift[0].ItemID)
		assert.Equal(t, "operator", report.Drift[0].Cached)
		assert.Equal(t, "buyer", report.Drift[0].Canonical)
	})

	t.Run("Missing identifier", func(t *testing.T) {
		assets := registry.NewInMemory()
		l, _, id := buildLedger(t, assets)
		require.NoError(t, assets.Burn(t.Context(), id))

		report, err := audit.Run(t.Context(), l.Snapshot(), assets)
		require.NoError(t, err)
		assert.False(t, report.Clean())
		assert.Equal(t, []uint64{id}, report.Missing)
	})

	t.Run("Nil registry skips ownership", func(t *testing.T) {
		l, _, _ := buildLedger(t, registry.NewInMemory())

		report, err := audit.Run(t.Context(), l.Snapshot(), nil)
		require.NoError(t, err)
		assert.True(t, report.Clean())
		assert.Empty(t, report.Drift)
	})
}
