package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownAsset is returned when an identifier is not registered.
var ErrUnknownAsset = errors.New("unknown asset identifier")

// AssetRegistry is the external registry of unique asset identifiers.
// It is the canonical record of who holds each identifier.
type AssetRegistry interface {
	// Mint registers a new identifier under the given owner.
	Mint(ctx context.Context, owner string, id uint64) error
	// Burn destroys an identifier. The identifier must exist.
	Burn(ctx context.Context, id uint64) error
	// OwnerOf returns the current holder of an identifier.
	OwnerOf(ctx context.Context, id uint64) (string, error)
	// Transfer moves an identifier to a new holder.
	Transfer(ctx context.Context, id uint64, newOwner string) error
}

// InMemory is an AssetRegistry backed by a process-local map.
type InMemory struct {
	mu     sync.Mutex
	owners map[uint64]string
}

// NewInMemory creates an empty in-memory registry.
func NewInMemory() *InMemory {
	return &InMemory{owners: make(map[uint64]string)}
}

func (r *InMemory) Mint(ctx context.Context, owner string, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.owners[id]; exists {
		return fmt.Errorf("identifier %d already minted", id)
	}
	r.owners[id] = owner
	return nil
}

func (r *InMemory) Burn(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.owners[id]; !exists {
		return fmt.Errorf("burn %d: %w", id, ErrUnknownAsset)
	}
	delete(r.owners, id)
	return nil
}

func (r *InMemory) OwnerOf(ctx context.Context, id uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, exists := r.owners[id]
	if !exists {
		return "", fmt.Errorf("owner of %d: %w", id, ErrUnknownAsset)
	}
	return owner, nil
}

func (r *InMemory) Transfer(ctx context.Context, id uint64, newOwner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.owners[id]; !exists {
		return fmt.Errorf("transfer %d: %w", id, ErrUnknownAsset)
	}
	r.owners[id] = newOwner
	return nil
}
