package lifecycle

import (
	"supply-ledger/core/ledger"

	"go.uber.org/zap"
)

// Service handles batch lifecycle transitions.
type Service struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewService creates a new lifecycle service.
func NewService(l *ledger.Ledger, logger *zap.Logger) *Service {
	return &Service{ledger: l, logger: logger}
}

// Ready clears a batch of items for auction.
func (s *Service) Ready(ids []uint64) error {
	if err := s.ledger.ReadyForAuction(ids); err != nil {
		return err
	}
	s.logger.Info("Items cleared for auction", zap.Uint64s("item_ids", ids))
	return nil
}

// Bid records accepted bids on a batch of items.
func (s *Service) Bid(ids []uint64, flags []bool) error {
	if err := s.ledger.SetBidStatus(ids, flags); err != nil {
		return err
	}
	s.logger.Info("Bids recorded", zap.Uint64s("item_ids", ids))
	return nil
}

// Sale records completed sales on a batch of items.
func (s *Service) Sale(ids []uint64, flags []bool) error {
	if err := s.ledger.SetSaleStatus(ids, flags); err != nil {
		return err
	}
	s.logger.Info("Sales recorded", zap.Uint64s("item_ids", ids))
	return nil
}

// Shipping records warehouse departures on a batch of items.
func (s *Service) Shipping(ids []uint64, flags []bool) error {
	if err := s.ledger.SetShippingStatus(ids, flags); err != nil {
		return err
	}
	s.logger.Info("Shipments recorded", zap.Uint64s("item_ids", ids))
	return nil
}

// Delivery records delivery outcomes on a batch of shipped items.
func (s *Service) Delivery(ids []uint64, flags []bool) error {
	if err := s.ledger.SetDeliveryStatus(ids, flags); err != nil {
		return err
	}
	s.logger.Info("Deliveries recorded", zap.Uint64s("item_ids", ids))
	return nil
}
