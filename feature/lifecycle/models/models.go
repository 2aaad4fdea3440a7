package models

// BatchRequest names the items of an unflagged batch transition.
type BatchRequest struct {
	ItemIDs []uint64 `json:"item_ids"`
}

// FlaggedBatchRequest names the items of a flagged batch transition. Flags
// is index-aligned with ItemIDs; a false flag rejects the whole batch.
type FlaggedBatchRequest struct {
	ItemIDs []uint64 `json:"item_ids"`
	Flags   []bool   `json:"flags"`
}
