package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bucket identifies one of the four aggregate unit counters on a product.
type Bucket int

const (
	BucketAvailable Bucket = iota
	BucketReserved
	BucketSold
	BucketShipped
)

func (b Bucket) String() string {
	switch b {
	case BucketAvailable:
		return "available"
	case BucketReserved:
		return "reserved"
	case BucketSold:
		return "sold"
	case BucketShipped:
		return "shipped"
	default:
		return fmt.Sprintf("bucket(%d)", int(b))
	}
}

// Inventory holds the four aggregate unit buckets of a product. The bucket
// sum equals the number of live items of the product; it only changes on
// mint (+1 available) and burn (-1 from the occupied bucket).
type Inventory struct {
	Available uint64 `json:"available"`
	Reserved  uint64 `json:"reserved"`
	Sold      uint64 `json:"sold"`
	Shipped   uint64 `json:"shipped"`
}

// Total returns the bucket sum.
func (inv Inventory) Total() uint64 {
	return inv.Available + inv.Reserved + inv.Sold + inv.Shipped
}

func (inv *Inventory) ptr(b Bucket) *uint64 {
	switch b {
	case BucketAvailable:
		return &inv.Available
	case BucketReserved:
		return &inv.Reserved
	case BucketSold:
		return &inv.Sold
	default:
		return &inv.Shipped
	}
}

// Count returns the unit count of a bucket.
func (inv Inventory) Count(b Bucket) uint64 {
	return *inv.ptr(b)
}

// move shifts one unit from one bucket to the next. It fails without
// mutating if the source bucket is empty.
func (inv *Inventory) move(from, to Bucket) error {
	src := inv.ptr(from)
	if *src == 0 {
		return fmt.Errorf("move %s to %s: %w", from, to, ErrCapacityExceeded)
	}
	*src--
	*inv.ptr(to)++
	return nil
}

// release removes one unit from a bucket. It fails without mutating if the
// bucket is already empty; that can only mean the ledger is corrupted.
func (inv *Inventory) release(b Bucket) error {
	src := inv.ptr(b)
	if *src == 0 {
		return fmt.Errorf("release %s: %w", b, ErrCapacityExceeded)
	}
	*src--
	return nil
}

// State is the lifecycle position of an item. States are strictly ordered;
// each transition moves one unit between the corresponding buckets of the
// item's product.
type State int

const (
	// StateMinted is a freshly created item, occupying the available bucket.
	StateMinted State = iota
	// StateReady is cleared for auction, still in the available bucket.
	StateReady
	// StateBidded carries an accepted bid, occupying the reserved bucket.
	StateBidded
	// StateSold is paid for, occupying the sold bucket.
	StateSold
	// StateShipped left the warehouse, occupying the shipped bucket.
	StateShipped
)

func (s State) String() string {
	switch s {
	case StateMinted:
		return "minted"
	case StateReady:
		return "ready"
	case StateBidded:
		return "bidded"
	case StateSold:
		return "sold"
	case StateShipped:
		return "shipped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// bucket returns the inventory bucket a unit in this state occupies.
func (s State) bucket() Bucket {
	switch s {
	case StateMinted, StateReady:
		return BucketAvailable
	case StateBidded:
		return BucketReserved
	case StateSold:
		return BucketSold
	default:
		return BucketShipped
	}
}

// Location is the physical whereabouts of an item.
type Location int

const (
	LocationSeller Location = iota
	LocationHQ
	LocationPartner
	LocationTransit
	LocationBuyer
)

func (l Location) String() string {
	switch l {
	case LocationSeller:
		return "seller"
	case LocationHQ:
		return "hq"
	case LocationPartner:
		return "partner"
	case LocationTransit:
		return "transit"
	case LocationBuyer:
		return "buyer"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// ParseLocation converts a location name to its enum value.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "seller":
		return LocationSeller, nil
	case "hq":
		return LocationHQ, nil
	case "partner":
		return LocationPartner, nil
	case "transit":
		return LocationTransit, nil
	case "buyer":
		return LocationBuyer, nil
	default:
		return 0, fmt.Errorf("unknown location %q", s)
	}
}

// Product is one catalog entry: a sellable design with multiple variant
// dimensions and remaining stock per label.
type Product struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	// Variants is the flat, ordered label list; separator sentinels
	// partition it into dimensions (see core/variant).
	Variants []string `json:"variants"`
	// Quantities is index-aligned with Variants; each entry is the
	// remaining stock for that single label.
	Quantities []uint64  `json:"quantities"`
	Inventory  Inventory `json:"inventory"`
}

// Item is one serialized physical unit of a product.
type Item struct {
	ID        uint64 `json:"id"`
	ProductID uint64 `json:"product_id"`
	// Owner is a convenience cache; the asset registry is the canonical
	// record of the current holder.
	Owner string `json:"owner"`
	// Variants holds exactly one label per dimension of the product.
	Variants    []string        `json:"variants"`
	Price       decimal.Decimal `json:"price"`
	Location    Location        `json:"location"`
	Chipped     bool            `json:"chipped"`
	Digitized   bool            `json:"digitized"`
	State       State           `json:"state"`
	MetadataRef string          `json:"metadata_ref,omitempty"`
}

// CanAuction reports whether the item has been cleared for auction.
func (i Item) CanAuction() bool { return i.State >= StateReady }

// HasBid reports whether the item carries an accepted bid.
func (i Item) HasBid() bool { return i.State >= StateBidded }

// IsSold reports whether the item has been sold.
func (i Item) IsSold() bool { return i.State >= StateSold }

// IsShipped reports whether the item has left the warehouse.
func (i Item) IsShipped() bool { return i.State >= StateShipped }
