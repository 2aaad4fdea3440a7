package lifecycle_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"supply-ledger/core/ledger"
	"supply-ledger/core/registry"
	"supply-ledger/feature/lifecycle"
	"supply-ledger/feature/lifecycle/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newApp seeds one product and two auction-eligible items.
func newApp(t *testing.T) (*fiber.App, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(registry.NewInMemory(), "operator")
	_, err := l.CreateProduct("Shirt", []string{"S"}, []uint64{5})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := l.MintItem(t.Context(), ledger.MintRequest{
			ProductID: 1,
			Variants:  []string{"S"},
			Chipped:   true,
			Digitized: true,
		})
		require.NoError(t, err)
	}

	app := fiber.New()
	feature := lifecycle.NewFeature(l, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, l
}

func post(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func itemState(t *testing.T, l *ledger.Ledger, id uint64) ledger.State {
	t.Helper()
	it, err := l.GetItem(id)
	require.NoError(t, err)
	return it.State
}

func TestHandleReady(t *testing.T) {
	t.Run("Cleared", func(t *testing.T) {
		app, l := newApp(t)
		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{1, 2}})
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Equal(t, ledger.StateReady, itemState(t, l, 1))
		assert.Equal(t, ledger.StateReady, itemState(t, l, 2))
	})

	t.Run("Unchipped item rejects batch", func(t *testing.T) {
		app, l := newApp(t)
		_, err := l.MintItem(t.Context(), ledger.MintRequest{
			ProductID: 1,
			Variants:  []string{"S"},
			Digitized: true,
		})
		require.NoError(t, err)

		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{1, 3}})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, ledger.StateMinted, itemState(t, l, 1))
	})

	t.Run("Unknown item", func(t *testing.T) {
		app, _ := newApp(t)
		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{42}})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestFlaggedTransitions(t *testing.T) {
	advance := func(t *testing.T, app *fiber.App, path string, ids []uint64) {
		t.Helper()
		flags := make([]bool, len(ids))
		for i := range flags {
			flags[i] = true
		}
		resp := post(t, app, path, models.FlaggedBatchRequest{ItemIDs: ids, Flags: flags})
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	t.Run("Full walk", func(t *testing.T) {
		app, l := newApp(t)
		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{1, 2}})
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		advance(t, app, "/lifecycle/bid", []uint64{1, 2})
		advance(t, app, "/lifecycle/sale", []uint64{1, 2})
		advance(t, app, "/lifecycle/shipping", []uint64{1, 2})
		advance(t, app, "/lifecycle/delivery", []uint64{1})

		first, err := l.GetItem(1)
		require.NoError(t, err)
		assert.Equal(t, ledger.StateShipped, first.State)
		assert.Equal(t, ledger.LocationBuyer, first.Location)

		second, err := l.GetItem(2)
		require.NoError(t, err)
		assert.Equal(t, ledger.LocationTransit, second.Location)

		p, err := l.GetProduct(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), p.Inventory.Shipped)
	})

	t.Run("Skipping a stage rejects", func(t *testing.T) {
		app, _ := newApp(t)
		resp := post(t, app, "/lifecycle/sale", models.FlaggedBatchRequest{
			ItemIDs: []uint64{1},
			Flags:   []bool{true},
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("False flag rejects batch", func(t *testing.T) {
		app, l := newApp(t)
		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{1, 2}})
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		resp = post(t, app, "/lifecycle/bid", models.FlaggedBatchRequest{
			ItemIDs: []uint64{1, 2},
			Flags:   []bool{true, false},
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, ledger.StateReady, itemState(t, l, 1))
	})

	t.Run("Parity mismatch rejects", func(t *testing.T) {
		app, _ := newApp(t)
		resp := post(t, app, "/lifecycle/bid", models.FlaggedBatchRequest{
			ItemIDs: []uint64{1, 2},
			Flags:   []bool{true},
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Failed delivery stays in transit", func(t *testing.T) {
		app, l := newApp(t)
		resp := post(t, app, "/lifecycle/ready", models.BatchRequest{ItemIDs: []uint64{1}})
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		advance(t, app, "/lifecycle/bid", []uint64{1})
		advance(t, app, "/lifecycle/sale", []uint64{1})
		advance(t, app, "/lifecycle/shipping", []uint64{1})

		resp = post(t, app, "/lifecycle/delivery", models.FlaggedBatchRequest{
			ItemIDs: []uint64{1},
			Flags:   []bool{false},
		})
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		it, err := l.GetItem(1)
		require.NoError(t, err)
		assert.Equal(t, ledger.LocationTransit, it.Location)
	})
}
