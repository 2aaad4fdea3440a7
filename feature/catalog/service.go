package catalog

import (
	"supply-ledger/core/ledger"
	"supply-ledger/feature/catalog/models"

	"go.uber.org/zap"
)

// Service handles catalog operations.
type Service struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(l *ledger.Ledger, logger *zap.Logger) *Service {
	return &Service{ledger: l, logger: logger}
}

// CreateProduct adds a catalog entry and returns its id.
func (s *Service) CreateProduct(req models.ProductRequest) (uint64, error) {
	id, err := s.ledger.CreateProduct(req.Name, req.Variants, req.Quantities)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Product created",
		zap.Uint64("product_id", id),
		zap.String("name", req.Name),
		zap.Int("labels", len(req.Variants)),
	)
	return id, nil
}

// UpdateProduct replaces a product's name, labels and stock wholesale.
func (s *Service) UpdateProduct(id uint64, req models.ProductRequest) error {
	if err := s.ledger.UpdateProduct(id, req.Name, req.Variants, req.Quantities); err != nil {
		return err
	}
	s.logger.Info("Product updated", zap.Uint64("product_id", id))
	return nil
}

// GetProduct reads one product.
func (s *Service) GetProduct(id uint64) (models.ProductResponse, error) {
	p, err := s.ledger.GetProduct(id)
	if err != nil {
		return models.ProductResponse{}, err
	}
	return models.FromLedger(p), nil
}

// NextProductID reads the id counter.
func (s *Service) NextProductID() uint64 {
	return s.ledger.NextProductID()
}
