package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

// CreateSale records a newly listed maker order
func (s *pgStore) CreateSale(ctx context.Context, input CreateSaleInput) (*schema.Sale, error) {
	sale := schema.Sale{
		OrderHash:    input.OrderHash,
		Network:      string(input.Network),
		CardID:       input.CardID,
		UserID:       input.UserID,
		TokensCount:  input.TokensCount,
		Price:        input.Price,
		Currency:     input.Currency,
		Status:       schema.SaleStatusOpen,
		Signature:    input.Signature,
		Order:        input.Order,
		SaleContract: domain.NormalizeAddress(input.SaleContract),
	}

	if err := s.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &sale, nil
}

// GetOpenSaleByOrderHash retrieves an open sale by its order hash. Sold or
// deleted sales are not returned.
func (s *pgStore) GetOpenSaleByOrderHash(ctx context.Context, network domain.Network, orderHash string) (*schema.Sale, error) {
	var sale schema.Sale
	err := s.db.WithContext(ctx).
		Where("network = ? AND order_hash = ? AND status = ?", string(network), orderHash, schema.SaleStatusOpen).
		First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return &sale, nil
}

// GetOpenSalesByMakerAndCard retrieves a maker's open sales on one card
func (s *pgStore) GetOpenSalesByMakerAndCard(ctx context.Context, cardID int64, userID string) ([]schema.Sale, error) {
	var sales []schema.Sale
	err := s.db.WithContext(ctx).
		Where("card_id = ? AND user_id = ? AND status = ?", cardID, userID, schema.SaleStatusOpen).
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get open sales: %w", err)
	}

	return sales, nil
}

// MarkSalesSold transitions the given orders to sold in one statement
func (s *pgStore) MarkSalesSold(ctx context.Context, orderHashes []string) error {
	if len(orderHashes) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("order_hash IN ?", orderHashes).
		Updates(map[string]interface{}{
			"status":     schema.SaleStatusSold,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark sales sold: %w", err)
	}

	return nil
}

// DeleteSales removes the given sales
func (s *pgStore) DeleteSales(ctx context.Context, saleIDs []int64) error {
	if len(saleIDs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("id IN ?", saleIDs).
		Delete(&schema.Sale{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete sales: %w", err)
	}

	return nil
}

// HasOpenSales reports whether at least one open sale exists for a card
func (s *pgStore) HasOpenSales(ctx context.Context, cardID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("card_id = ? AND status = ?", cardID, schema.SaleStatusOpen).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count open sales: %w", err)
	}

	return count > 0, nil
}
