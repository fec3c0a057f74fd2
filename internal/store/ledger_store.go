package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

// GetCollectionByContract retrieves a collection by its contract address
func (s *pgStore) GetCollectionByContract(ctx context.Context, network domain.Network, contractAddress string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).
		Where("network = ? AND contract_id = ?", string(network), domain.NormalizeAddress(contractAddress)).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return &collection, nil
}

// GetCollectionsByContracts retrieves collections for multiple contract
// addresses in one query, keyed by normalized address
func (s *pgStore) GetCollectionsByContracts(ctx context.Context, network domain.Network, contractAddresses []string) (map[string]*schema.Collection, error) {
	normalized := make([]string, 0, len(contractAddresses))
	for _, addr := range contractAddresses {
		normalized = append(normalized, domain.NormalizeAddress(addr))
	}

	var collections []schema.Collection
	err := s.db.WithContext(ctx).
		Where("network = ? AND contract_id IN ?", string(network), normalized).
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collections: %w", err)
	}

	result := make(map[string]*schema.Collection, len(collections))
	for i := range collections {
		result[collections[i].ContractID] = &collections[i]
	}

	return result, nil
}

// CreateCollection creates a new collection
func (s *pgStore) CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.Collection, error) {
	collection := schema.Collection{
		ContractID:  domain.NormalizeAddress(input.ContractID),
		Network:     string(input.Network),
		UserID:      input.UserID,
		Name:        input.Name,
		Symbol:      input.Symbol,
		Description: input.Description,
		Logo:        input.Logo,
		Links:       input.Links,
		URI:         input.URI,
	}

	if err := s.db.WithContext(ctx).Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return &collection, nil
}

// GetCardByCollectionAndIdentifier retrieves a card by its position in a collection
func (s *pgStore) GetCardByCollectionAndIdentifier(ctx context.Context, collectionID int64, identifier uint64) (*schema.Card, error) {
	var card schema.Card
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND identifier = ?", collectionID, identifier).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &card, nil
}

// CreateCardMint creates a card together with its initial creator balance in a
// single transaction, so the supply-equals-balances invariant holds from the
// first row onward
func (s *pgStore) CreateCardMint(ctx context.Context, input CreateCardMintInput) (*schema.Card, error) {
	card := schema.Card{
		TokenID:      input.TokenID,
		Identifier:   input.Identifier,
		CollectionID: input.CollectionID,
		CreatorID:    input.CreatorID,
		TotalSupply:  input.Value,
		Name:         input.Name,
		Description:  input.Description,
		Image:        input.Image,
		Animation:    input.Animation,
		Attributes:   input.Attributes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}

		balance := schema.CardBalance{
			CardID:      card.ID,
			UserID:      input.CreatorID,
			EthAddress:  domain.NormalizeAddress(input.CreatorAddr),
			TokenAmount: input.Value,
		}
		if err := tx.Create(&balance).Error; err != nil {
			return fmt.Errorf("failed to create creator balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &card, nil
}

// DeleteCardCascade deletes a card with all of its balances and sales
func (s *pgStore) DeleteCardCascade(ctx context.Context, cardID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", cardID).Delete(&schema.Sale{}).Error; err != nil {
			return fmt.Errorf("failed to delete card sales: %w", err)
		}
		if err := tx.Where("card_id = ?", cardID).Delete(&schema.CardBalance{}).Error; err != nil {
			return fmt.Errorf("failed to delete card balances: %w", err)
		}
		if err := tx.Where("id = ?", cardID).Delete(&schema.Card{}).Error; err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		return nil
	})
}

// SetCardHasSale persists the recomputed has_sale cache
func (s *pgStore) SetCardHasSale(ctx context.Context, cardID int64, hasSale bool) error {
	err := s.db.WithContext(ctx).Model(&schema.Card{}).
		Where("id = ?", cardID).
		Update("has_sale", hasSale).Error
	if err != nil {
		return fmt.Errorf("failed to update card has_sale: %w", err)
	}

	return nil
}

// GetBalance retrieves one owner's balance on a card
func (s *pgStore) GetBalance(ctx context.Context, cardID int64, userID string) (*schema.CardBalance, error) {
	var balance schema.CardBalance
	err := s.db.WithContext(ctx).
		Where("card_id = ? AND user_id = ?", cardID, userID).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &balance, nil
}

// CountBalances counts the remaining balance rows on a card
func (s *pgStore) CountBalances(ctx context.Context, cardID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.CardBalance{}).
		Where("card_id = ?", cardID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count balances: %w", err)
	}

	return count, nil
}

// DecrementBalance subtracts amount from an owner's balance, deleting the row
// when it reaches zero. Zero-amount balance rows are never persisted.
func (s *pgStore) DecrementBalance(ctx context.Context, cardID int64, userID string, amount uint64, reduceSupply bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := decrementBalanceTx(tx, cardID, userID, amount); err != nil {
			return err
		}

		if reduceSupply {
			err := tx.Model(&schema.Card{}).
				Where("id = ?", cardID).
				Update("total_supply", gorm.Expr("total_supply - ?", amount)).Error
			if err != nil {
				return fmt.Errorf("failed to reduce total supply: %w", err)
			}
		}

		return nil
	})
}

// IncrementBalance adds amount to an owner's balance, creating the row when
// none exists
func (s *pgStore) IncrementBalance(ctx context.Context, cardID int64, userID string, ethAddress string, amount uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return incrementBalanceTx(tx, cardID, userID, ethAddress, amount)
	})
}

// MoveBalance moves amount from one owner to another in a single transaction
func (s *pgStore) MoveBalance(ctx context.Context, cardID int64, fromUserID string, toUserID string, toEthAddress string, amount uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := decrementBalanceTx(tx, cardID, fromUserID, amount); err != nil {
			return err
		}

		return incrementBalanceTx(tx, cardID, toUserID, toEthAddress, amount)
	})
}

func decrementBalanceTx(tx *gorm.DB, cardID int64, userID string, amount uint64) error {
	// Lock the row so concurrent reconcilers on the same card serialize
	var balance schema.CardBalance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("card_id = ? AND user_id = ?", cardID, userID).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCardNotFound
		}
		return fmt.Errorf("failed to lock sender balance: %w", err)
	}

	if balance.TokenAmount <= amount {
		if err := tx.Delete(&balance).Error; err != nil {
			return fmt.Errorf("failed to delete zero balance: %w", err)
		}
		return nil
	}

	err = tx.Model(&schema.CardBalance{}).
		Where("id = ?", balance.ID).
		Updates(map[string]interface{}{
			"token_amount": gorm.Expr("token_amount - ?", amount),
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update sender balance: %w", err)
	}

	return nil
}

func incrementBalanceTx(tx *gorm.DB, cardID int64, userID string, ethAddress string, amount uint64) error {
	balance := schema.CardBalance{
		CardID:      cardID,
		UserID:      userID,
		EthAddress:  domain.NormalizeAddress(ethAddress),
		TokenAmount: amount,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"token_amount": gorm.Expr("card_balances.token_amount + ?", amount),
			"updated_at":   time.Now(),
		}),
	}).Create(&balance).Error
	if err != nil {
		return fmt.Errorf("failed to upsert receiver balance: %w", err)
	}

	return nil
}
