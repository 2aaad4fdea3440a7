package audit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"supply-ledger/core/ledger"
	"supply-ledger/core/registry"
)

// ProductResult is the audit outcome for a single product.
type ProductResult struct {
	// ProductID is the product the result describes.
	ProductID uint64 `json:"product_id"`

	// Name is the product's display label.
	Name string `json:"name"`

	// Counters are the bucket counters recorded on the product.
	Counters ledger.Inventory `json:"counters"`

	// Derived are the buckets reconstructed from live item states.
	Derived ledger.Inventory `json:"derived"`

	// Mismatch describes each bucket where the two views disagree,
	// e.g. "reserved: counter=2 items=1".
	Mismatch []string `json:"mismatch"`
}

// OwnerDrift records an item whose cached owner disagrees with the registry.
type OwnerDrift struct {
	ItemID    uint64 `json:"item_id"`
	Cached    string `json:"cached"`
	Canonical string `json:"canonical"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	Products           int `json:"products"`
	Items              int `json:"items"`
	BucketMismatches   int `json:"bucket_mismatches"`
	OrphanedItems      int `json:"orphaned_items"`
	OwnerDrift         int `json:"owner_drift"`
	MissingIdentifiers int `json:"missing_identifiers"`
}

// Report is the complete audit output.
type Report struct {
	Results []ProductResult `json:"results"`

	// Orphaned lists items referencing a product that does not exist.
	Orphaned []uint64 `json:"orphaned,omitempty"`

	// Drift lists items whose cached owner lags the registry.
	Drift []OwnerDrift `json:"drift,omitempty"`

	// Missing lists items whose identifier the registry does not know.
	Missing []uint64 `json:"missing,omitempty"`

	Summary Summary `json:"summary"`
}

// Clean reports whether the audit found nothing wrong.
func (r *Report) Clean() bool {
	return r.Summary.BucketMismatches == 0 &&
		r.Summary.OrphanedItems == 0 &&
		r.Summary.OwnerDrift == 0 &&
		r.Summary.MissingIdentifiers == 0
}

// Run audits a snapshot. When assets is nil the ownership checks are
// skipped and only the conservation checks run.
func Run(ctx context.Context, snap ledger.Snapshot, assets registry.AssetRegistry) (*Report, error) {
	derived := make(map[uint64]*ledger.Inventory, len(snap.Products))
	known := make(map[uint64]ledger.Product, len(snap.Products))
	for _, p := range snap.Products {
		derived[p.ID] = &ledger.Inventory{}
		known[p.ID] = p
	}

	report := &Report{Results: make([]ProductResult, 0, len(snap.Products))}
	report.Summary.Products = len(snap.Products)
	report.Summary.Items = len(snap.Items)

	for _, it := range snap.Items {
		inv, ok := derived[it.ProductID]
		if !ok {
			report.Orphaned = append(report.Orphaned, it.ID)
			continue
		}
		addUnit(inv, it.State)
	}

	for id, p := range known {
		result := ProductResult{
			ProductID: id,
			Name:      p.Name,
			Counters:  p.Inventory,
			Derived:   *derived[id],
			Mismatch:  []string{},
		}
		result.Mismatch = compareBuckets(p.Inventory, *derived[id])
		if len(result.Mismatch) > 0 {
			report.Summary.BucketMismatches++
		}
		report.Results = append(report.Results, result)
	}

	// Sort results by product id for deterministic output.
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].ProductID < report.Results[j].ProductID
	})
	sort.Slice(report.Orphaned, func(i, j int) bool { return report.Orphaned[i] < report.Orphaned[j] })
	report.Summary.OrphanedItems = len(report.Orphaned)

	if assets != nil {
		if err := checkOwnership(ctx, snap.Items, assets, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func checkOwnership(ctx context.Context, items []ledger.Item, assets registry.AssetRegistry, report *Report) error {
	for _, it := range items {
		owner, err := assets.OwnerOf(ctx, it.ID)
		if err != nil {
			if errors.Is(err, registry.ErrUnknownAsset) {
				report.Missing = append(report.Missing, it.ID)
				continue
			}
			return fmt.Errorf("owner of item %d: %w", it.ID, err)
		}
		if owner != it.Owner {
			report.Drift = append(report.Drift, OwnerDrift{ItemID: it.ID, Cached: it.Owner, Canonical: owner})
		}
	}
	sort.Slice(report.Drift, func(i, j int) bool { return report.Drift[i].ItemID < report.Drift[j].ItemID })
	sort.Slice(report.Missing, func(i, j int) bool { return report.Missing[i] < report.Missing[j] })
	report.Summary.OwnerDrift = len(report.Drift)
	report.Summary.MissingIdentifiers = len(report.Missing)
	return nil
}

func addUnit(inv *ledger.Inventory, s ledger.State) {
	switch s {
	case ledger.StateMinted, ledger.StateReady:
		inv.Available++
	case ledger.StateBidded:
		inv.Reserved++
	case ledger.StateSold:
		inv.Sold++
	default:
		inv.Shipped++
	}
}

func compareBuckets(counters, derived ledger.Inventory) []string {
	mismatch := []string{}
	add := func(name string, counter, items uint64) {
		if counter != items {
			mismatch = append(mismatch, fmt.Sprintf("%s: counter=%d items=%d", name, counter, items))
		}
	}
	add("available", counters.Available, derived.Available)
	add("reserved", counters.Reserved, derived.Reserved)
	add("sold", counters.Sold, derived.Sold)
	add("shipped", counters.Shipped, derived.Shipped)
	return mismatch
}
