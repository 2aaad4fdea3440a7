package models

import "supply-ledger/core/ledger"

// ProductRequest carries the fields for creating or replacing a product.
type ProductRequest struct {
	Name       string   `json:"name"`
	Variants   []string `json:"variants"`
	Quantities []uint64 `json:"quantities"`
}

// ProductResponse is the read model of a product.
type ProductResponse struct {
	ID         uint64           `json:"id"`
	Name       string           `json:"name"`
	Variants   []string         `json:"variants"`
	Quantities []uint64         `json:"quantities"`
	Inventory  ledger.Inventory `json:"inventory"`
}

// FromLedger converts a ledger product to its response form.
func FromLedger(p ledger.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Variants:   p.Variants,
		Quantities: p.Quantities,
		Inventory:  p.Inventory,
	}
}

// CreatedResponse reports the id of a newly created product.
type CreatedResponse struct {
	ID uint64 `json:"id"`
}

// NextIDResponse reports the next product id counter.
type NextIDResponse struct {
	NextProductID uint64 `json:"next_product_id"`
}
