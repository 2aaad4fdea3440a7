package items

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"supply-ledger/core/ledger"
	"supply-ledger/core/storage"
	"supply-ledger/feature/items/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles item operations.
type Service struct {
	ledger  *ledger.Ledger
	storage storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new item service.
func NewService(l *ledger.Ledger, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{ledger: l, storage: store, bucket: bucket, logger: logger}
}

// Mint creates one item. An attached metadata document is written to object
// storage first; if the ledger then rejects the mint, the orphaned document
// is removed on a best-effort basis.
func (s *Service) Mint(ctx context.Context, req models.MintItemRequest, location ledger.Location) (uint64, error) {
	var metadataRef string
	if len(req.Metadata) > 0 {
		metadataRef = fmt.Sprintf("items/%s.json", uuid.NewString())
		_, err := s.storage.PutObject(ctx, s.bucket, metadataRef,
			bytes.NewReader(req.Metadata), int64(len(req.Metadata)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return 0, fmt.Errorf("failed to store item metadata: %w", err)
		}
	}

	id, err := s.ledger.MintItem(ctx, ledger.MintRequest{
		ProductID:   req.ProductID,
		Variants:    req.Variants,
		Price:       req.Price,
		Location:    location,
		Chipped:     req.Chipped,
		Digitized:   req.Digitized,
		MetadataRef: metadataRef,
	})
	if err != nil {
		if metadataRef != "" {
			if rmErr := s.storage.RemoveObject(ctx, s.bucket, metadataRef, minio.RemoveObjectOptions{}); rmErr != nil {
				s.logger.Warn("Failed to remove orphaned item metadata",
					zap.String("object", metadataRef), zap.Error(rmErr))
			}
		}
		return 0, err
	}

	s.logger.Info("Item minted",
		zap.Uint64("item_id", id),
		zap.Uint64("product_id", req.ProductID),
		zap.Strings("variants", req.Variants),
	)
	return id, nil
}

// Get reads one item.
func (s *Service) Get(id uint64) (models.ItemResponse, error) {
	it, err := s.ledger.GetItem(id)
	if err != nil {
		return models.ItemResponse{}, err
	}
	return models.FromLedger(it), nil
}

// Variants reads the variant labels of one item.
func (s *Service) Variants(id uint64) ([]string, error) {
	return s.ledger.GetItemVariants(id)
}

// Owner re-reads the canonical holder from the asset registry.
func (s *Service) Owner(ctx context.Context, id uint64) (string, error) {
	return s.ledger.RefreshOwner(ctx, id)
}

// Metadata reads the stored metadata document of one item.
func (s *Service) Metadata(ctx context.Context, id uint64) ([]byte, error) {
	it, err := s.ledger.GetItem(id)
	if err != nil {
		return nil, err
	}
	if it.MetadataRef == "" {
		return nil, fmt.Errorf("item %d has no metadata: %w", id, ledger.ErrItemNotFound)
	}

	obj, err := s.storage.GetObject(ctx, s.bucket, it.MetadataRef, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read item metadata: %w", err)
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// Update applies the administrative fields of an item.
func (s *Service) Update(id uint64, req models.UpdateItemRequest, location ledger.Location) error {
	if err := s.ledger.UpdateItem(id, req.Price, location, req.Chipped, req.Digitized); err != nil {
		return err
	}
	s.logger.Info("Item updated", zap.Uint64("item_id", id))
	return nil
}

// Burn destroys one item and returns its slot stock to the catalog. The
// metadata document, if any, is removed afterwards on a best-effort basis.
func (s *Service) Burn(ctx context.Context, id uint64) error {
	it, err := s.ledger.GetItem(id)
	if err != nil {
		return err
	}
	if err := s.ledger.Burn(ctx, id); err != nil {
		return err
	}

	if it.MetadataRef != "" {
		if rmErr := s.storage.RemoveObject(ctx, s.bucket, it.MetadataRef, minio.RemoveObjectOptions{}); rmErr != nil {
			s.logger.Warn("Failed to remove metadata of burned item",
				zap.Uint64("item_id", id), zap.String("object", it.MetadataRef), zap.Error(rmErr))
		}
	}

	s.logger.Info("Item burned", zap.Uint64("item_id", id))
	return nil
}
