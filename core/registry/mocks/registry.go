package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// AssetRegistry is a mock implementation of registry.AssetRegistry
type AssetRegistry struct {
	mock.Mock
}

func (m *AssetRegistry) Mint(ctx context.Context, owner string, id uint64) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *AssetRegistry) Burn(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssetRegistry) OwnerOf(ctx context.Context, id uint64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *AssetRegistry) Transfer(ctx context.Context, id uint64, newOwner string) error {
	args := m.Called(ctx, id, newOwner)
	return args.Error(0)
}
