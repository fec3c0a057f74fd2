package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

// GetCollectionMetadataByUserAndSlug resolves pre-registered contract metadata
func (s *pgStore) GetCollectionMetadataByUserAndSlug(ctx context.Context, userID string, slug string) (*schema.CollectionMetadata, error) {
	var metadata schema.CollectionMetadata
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND slug = ?", userID, slug).
		First(&metadata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection metadata: %w", err)
	}

	return &metadata, nil
}

// LinkCollectionMetadata links a metadata record to its created collection
func (s *pgStore) LinkCollectionMetadata(ctx context.Context, metadataID int64, collectionID int64) error {
	err := s.db.WithContext(ctx).Model(&schema.CollectionMetadata{}).
		Where("id = ?", metadataID).
		Update("collection_id", collectionID).Error
	if err != nil {
		return fmt.Errorf("failed to link collection metadata: %w", err)
	}

	return nil
}

// GetCardMetadataByContractAndIdentifiers resolves pre-stored token metadata
// for many identifiers of one contract, keyed by identifier
func (s *pgStore) GetCardMetadataByContractAndIdentifiers(ctx context.Context, contractAddress string, identifiers []uint64) (map[uint64]*schema.CardMetadata, error) {
	if len(identifiers) == 0 {
		return map[uint64]*schema.CardMetadata{}, nil
	}

	var rows []schema.CardMetadata
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND identifier IN ?", domain.NormalizeAddress(contractAddress), identifiers).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get card metadata: %w", err)
	}

	result := make(map[uint64]*schema.CardMetadata, len(rows))
	for i := range rows {
		result[rows[i].Identifier] = &rows[i]
	}

	return result, nil
}
