package models

import (
	"encoding/json"

	"supply-ledger/core/ledger"

	"github.com/shopspring/decimal"
)

// MintItemRequest carries the fields for minting one item.
type MintItemRequest struct {
	ProductID uint64          `json:"product_id"`
	Variants  []string        `json:"variants"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location"`
	Chipped   bool            `json:"chipped"`
	Digitized bool            `json:"digitized"`
	// Metadata is an optional free-form document stored alongside the item.
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// UpdateItemRequest carries the administrative fields of an item.
type UpdateItemRequest struct {
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location"`
	Chipped   bool            `json:"chipped"`
	Digitized bool            `json:"digitized"`
}

// ItemResponse is the read model of an item.
type ItemResponse struct {
	ID          uint64          `json:"id"`
	ProductID   uint64          `json:"product_id"`
	Owner       string          `json:"owner"`
	Variants    []string        `json:"variants"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location"`
	Chipped     bool            `json:"chipped"`
	Digitized   bool            `json:"digitized"`
	State       string          `json:"state"`
	CanAuction  bool            `json:"can_auction"`
	HasBid      bool            `json:"has_bid"`
	IsSold      bool            `json:"is_sold"`
	IsShipped   bool            `json:"is_shipped"`
	MetadataRef string          `json:"metadata_ref,omitempty"`
}

// FromLedger converts a ledger item to its response form.
func FromLedger(it ledger.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Owner:       it.Owner,
		Variants:    it.Variants,
		Price:       it.Price,
		Location:    it.Location.String(),
		Chipped:     it.Chipped,
		Digitized:   it.Digitized,
		State:       it.State.String(),
		CanAuction:  it.CanAuction(),
		HasBid:      it.HasBid(),
		IsSold:      it.IsSold(),
		IsShipped:   it.IsShipped(),
		MetadataRef: it.MetadataRef,
	}
}

// MintedResponse reports the id of a newly minted item.
type MintedResponse struct {
	ID uint64 `json:"id"`
}

// OwnerResponse reports the canonical holder of an item.
type OwnerResponse struct {
	Owner string `json:"owner"`
}

// VariantsResponse reports the variant labels of an item.
type VariantsResponse struct {
	Variants []string `json:"variants"`
}
