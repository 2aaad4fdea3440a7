package ledger_test

import (
	"context"
	"errors"
	"testing"

	"supply-ledger/core/ledger"
	"supply-ledger/core/registry"
	"supply-ledger/core/registry/mocks"
	"supply-ledger/core/variant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedProduct creates the standard two-dimension test product:
// sizes S(2) M(1), colors red(2) blue(1).
func seedProduct(t *testing.T, l *ledger.Ledger) uint64 {
	t.Helper()
	id, err := l.CreateProduct("Shirt",
		[]string{"S", "M", variant.Separator, "red", "blue"},
		[]uint64{2, 1, 0, 2, 1})
	require.NoError(t, err)
	return id
}

func TestMintItem(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		assets := registry.NewInMemory()
		l := ledger.New(assets, "operator")
		pid := seedProduct(t, l)

		id, err := l.MintItem(t.Context(), ledger.MintRequest{
			ProductID: pid,
			Variants:  []string{"S", "red"},
			Price:     decimal.NewFromInt(120),
			Location:  ledger.LocationHQ,
			Chipped:   true,
			Digitized: true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)

		it, err := l.GetItem(id)
		require.NoError(t, err)
		assert.Equal(t, pid, it.ProductID)
		assert.Equal(t, "operator", it.Owner)
		assert.Equal(t, ledger.StateMinted, it.State)
		assert.False(t, it.CanAuction())

		p, err := l.GetProduct(pid)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 1, 0, 1, 1}, p.Quantities)
		assert.Equal(t, ledger.Inventory{Available: 1}, p.Inventory)

		owner, err := assets.OwnerOf(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "operator", owner)
	})

	t.Run("Unknown product", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: 9, Variants: []string{"S"}})
		assert.ErrorIs(t, err, ledger.ErrProductNotFound)
	})

	t.Run("Unknown label", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"XL", "red"}})
		assert.ErrorIs(t, err, ledger.ErrVariantMismatch)
	})

	t.Run("Missing dimension", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S"}})
		assert.ErrorIs(t, err, ledger.ErrVariantMismatch)
	})

	t.Run("Repeated dimension", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)
		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "M"}})
		assert.ErrorIs(t, err, ledger.ErrVariantMismatch)
	})

	t.Run("Out of stock", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)

		// blue has a single unit; the second mint against it must fail.
		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "blue"}})
		require.NoError(t, err)
		_, err = l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "blue"}})
		assert.ErrorIs(t, err, ledger.ErrCapacityExceeded)
	})

	t.Run("Failed mint leaves stock untouched", func(t *testing.T) {
		l := newTestLedger()
		pid := seedProduct(t, l)

		_, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"M", "blue"}})
		require.NoError(t, err)

		// M still has stock, blue does not. No partial decrement may survive.
		_, err = l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "blue"}})
		require.ErrorIs(t, err, ledger.ErrCapacityExceeded)

		p, err := l.GetProduct(pid)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 0, 0, 2, 0}, p.Quantities)
		assert.Equal(t, ledger.Inventory{Available: 1}, p.Inventory)
		assert.Equal(t, uint64(2), l.NextItemID())
	})

	t.Run("Registry failure leaves ledger unchanged", func(t *testing.T) {
		assets := new(mocks.AssetRegistry)
		assets.On("Mint", mock.Anything, "operator", uint64(1)).Return(errors.New("registry down"))

		l := ledger.New(assets, "operator")
		pid := seedProduct(t, l)

		_, err := l.MintItem(context.Background(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "red"}})
		require.Error(t, err)

		p, err := l.GetProduct(pid)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 1, 0, 2, 1}, p.Quantities)
		assert.Equal(t, ledger.Inventory{}, p.Inventory)
		assert.Equal(t, uint64(1), l.NextItemID())
		assets.AssertExpectations(t)
	})
}

func TestMintBurn_RoundTrip(t *testing.T) {
	l := newTestLedger()
	pid, err := l.CreateProduct("Cap", []string{"one-size"}, []uint64{2})
	require.NoError(t, err)

	before, err := l.GetProduct(pid)
	require.NoError(t, err)

	id, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"one-size"}})
	require.NoError(t, err)

	require.NoError(t, l.Burn(t.Context(), id))

	after, err := l.GetProduct(pid)
	require.NoError(t, err)
	assert.Equal(t, before.Quantities, after.Quantities)
	assert.Equal(t, before.Inventory, after.Inventory)

	_, err = l.GetItem(id)
	assert.ErrorIs(t, err, ledger.ErrItemNotFound)
}

func TestUpdateItem(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "red"}})
	require.NoError(t, err)

	err = l.UpdateItem(id, decimal.NewFromInt(99), ledger.LocationPartner, true, true)
	require.NoError(t, err)

	it, err := l.GetItem(id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(99).Equal(it.Price))
	assert.Equal(t, ledger.LocationPartner, it.Location)
	assert.True(t, it.Chipped)
	assert.True(t, it.Digitized)
	// Lifecycle state is out of the administrative update's reach.
	assert.Equal(t, ledger.StateMinted, it.State)

	assert.ErrorIs(t, l.UpdateItem(99, decimal.Zero, ledger.LocationSeller, false, false), ledger.ErrItemNotFound)
}

func TestRefreshOwner(t *testing.T) {
	assets := registry.NewInMemory()
	l := ledger.New(assets, "operator")
	pid := seedProduct(t, l)

	id, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"S", "red"}})
	require.NoError(t, err)

	// The registry is canonical; the item field is only a cache.
	require.NoError(t, assets.Transfer(t.Context(), id, "buyer"))

	it, err := l.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, "operator", it.Owner)

	owner, err := l.RefreshOwner(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "buyer", owner)

	it, err = l.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, "buyer", it.Owner)
}

func TestGetItemVariants(t *testing.T) {
	l := newTestLedger()
	pid := seedProduct(t, l)
	id, err := l.MintItem(t.Context(), ledger.MintRequest{ProductID: pid, Variants: []string{"M", "blue"}})
	require.NoError(t, err)

	labels, err := l.GetItemVariants(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "blue"}, labels)

	_, err = l.GetItemVariants(404)
	assert.ErrorIs(t, err, ledger.ErrItemNotFound)
}
