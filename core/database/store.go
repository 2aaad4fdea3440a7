package database

import (
	"context"
	"encoding/json"
	"fmt"

	"supply-ledger/core/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRecord is the persisted form of a ledger product.
type ProductRecord struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"size:180"`
	Variants   string `gorm:"type:text"`
	Quantities string `gorm:"type:text"`
	Available  uint64
	Reserved   uint64
	Sold       uint64
	Shipped    uint64
}

func (ProductRecord) TableName() string { return "ledger_products" }

// ItemRecord is the persisted form of a ledger item.
type ItemRecord struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uint64 `gorm:"index"`
	Owner       string `gorm:"size:140"`
	Variants    string `gorm:"type:text"`
	Price       string `gorm:"size:40"`
	Location    int
	Chipped     bool
	Digitized   bool
	State       int
	MetadataRef string `gorm:"size:255"`
}

func (ItemRecord) TableName() string { return "ledger_items" }

// CounterRecord persists the monotonic id counters.
type CounterRecord struct {
	Name  string `gorm:"primaryKey;size:40"`
	Value uint64
}

func (CounterRecord) TableName() string { return "ledger_counters" }

const (
	counterNextProduct = "next_product_id"
	counterNextItem    = "next_item_id"
)

// Store persists ledger snapshots. A snapshot fully replaces the previous
// one inside a single transaction, so a crash mid-save never leaves a mixed
// state on disk.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an established connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the ledger tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&ProductRecord{}, &ItemRecord{}, &CounterRecord{})
}

// Save writes a snapshot, replacing whatever was persisted before.
func (s *Store) Save(ctx context.Context, snap ledger.Snapshot) error {
	products := make([]ProductRecord, 0, len(snap.Products))
	for _, p := range snap.Products {
		rec, err := encodeProduct(p)
		if err != nil {
			return err
		}
		products = append(products, rec)
	}
	items := make([]ItemRecord, 0, len(snap.Items))
	for _, it := range snap.Items {
		rec, err := encodeItem(it)
		if err != nil {
			return err
		}
		items = append(items, rec)
	}
	counters := []CounterRecord{
		{Name: counterNextProduct, Value: snap.NextProductID},
		{Name: counterNextItem, Value: snap.NextItemID},
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&ProductRecord{}, &ItemRecord{}, &CounterRecord{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear previous snapshot: %w", err)
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("save products: %w", err)
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("save items: %w", err)
			}
		}
		if err := tx.Create(&counters).Error; err != nil {
			return fmt.Errorf("save counters: %w", err)
		}
		return nil
	})
}

// Load reads the persisted snapshot. An empty database yields an empty
// snapshot with the id counters at their starting value.
func (s *Store) Load(ctx context.Context) (ledger.Snapshot, error) {
	snap := ledger.Snapshot{NextProductID: 1, NextItemID: 1}
	db := s.db.WithContext(ctx)

	var products []ProductRecord
	if err := db.Find(&products).Error; err != nil {
		return snap, fmt.Errorf("load products: %w", err)
	}
	for _, rec := range products {
		p, err := decodeProduct(rec)
		if err != nil {
			return snap, err
		}
		snap.Products = append(snap.Products, p)
	}

	var items []ItemRecord
	if err := db.Find(&items).Error; err != nil {
		return snap, fmt.Errorf("load items: %w", err)
	}
	for _, rec := range items {
		it, err := decodeItem(rec)
		if err != nil {
			return snap, err
		}
		snap.Items = append(snap.Items, it)
	}

	var counters []CounterRecord
	if err := db.Find(&counters).Error; err != nil {
		return snap, fmt.Errorf("load counters: %w", err)
	}
	for _, c := range counters {
		switch c.Name {
		case counterNextProduct:
			snap.NextProductID = c.Value
		case counterNextItem:
			snap.NextItemID = c.Value
		}
	}
	return snap, nil
}

func encodeProduct(p ledger.Product) (ProductRecord, error) {
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return ProductRecord{}, fmt.Errorf("encode product %d variants: %w", p.ID, err)
	}
	quantities, err := json.Marshal(p.Quantities)
	if err != nil {
		return ProductRecord{}, fmt.Errorf("encode product %d quantities: %w", p.ID, err)
	}
	return ProductRecord{
		ID:         p.ID,
		Name:       p.Name,
		Variants:   string(variants),
		Quantities: string(quantities),
		Available:  p.Inventory.Available,
		Reserved:   p.Inventory.Reserved,
		Sold:       p.Inventory.Sold,
		Shipped:    p.Inventory.Shipped,
	}, nil
}

func decodeProduct(rec ProductRecord) (ledger.Product, error) {
	p := ledger.Product{
		ID:   rec.ID,
		Name: rec.Name,
		Inventory: ledger.Inventory{
			Available: rec.Available,
			Reserved:  rec.Reserved,
			Sold:      rec.Sold,
			Shipped:   rec.Shipped,
		},
	}
	if err := json.Unmarshal([]byte(rec.Variants), &p.Variants); err != nil {
		return p, fmt.Errorf("decode product %d variants: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(rec.Quantities), &p.Quantities); err != nil {
		return p, fmt.Errorf("decode product %d quantities: %w", rec.ID, err)
	}
	return p, nil
}

func encodeItem(it ledger.Item) (ItemRecord, error) {
	variants, err := json.Marshal(it.Variants)
	if err != nil {
		return ItemRecord{}, fmt.Errorf("encode item %d variants: %w", it.ID, err)
	}
	return ItemRecord{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Owner:       it.Owner,
		Variants:    string(variants),
		Price:       it.Price.String(),
		Location:    int(it.Location),
		Chipped:     it.Chipped,
		Digitized:   it.Digitized,
		State:       int(it.State),
		MetadataRef: it.MetadataRef,
	}, nil
}

func decodeItem(rec ItemRecord) (ledger.Item, error) {
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return ledger.Item{}, fmt.Errorf("decode item %d price: %w", rec.ID, err)
	}
	it := ledger.Item{
		ID:          rec.ID,
		ProductID:   rec.ProductID,
		Owner:       rec.Owner,
		Price:       price,
		Location:    ledger.Location(rec.Location),
		Chipped:     rec.Chipped,
		Digitized:   rec.Digitized,
		State:       ledger.State(rec.State),
		MetadataRef: rec.MetadataRef,
	}
	if err := json.Unmarshal([]byte(rec.Variants), &it.Variants); err != nil {
		return it, fmt.Errorf("decode item %d variants: %w", rec.ID, err)
	}
	return it, nil
}
