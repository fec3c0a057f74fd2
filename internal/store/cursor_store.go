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

// GetJobCursor retrieves the cursor for a job
func (s *pgStore) GetJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string) (*schema.JobCursor, error) {
	var cursor schema.JobCursor
	err := s.db.WithContext(ctx).
		Where("network = ? AND job_type = ? AND contract_address = ?",
			string(network), string(jobType), domain.NormalizeAddress(contractAddress)).
		First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job cursor: %w", err)
	}

	return &cursor, nil
}

// CreateJobCursor seeds a cursor at the given start block. Re-seeding an
// existing cursor is a no-op so restarts never rewind a job.
func (s *pgStore) CreateJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string, startBlock uint64) error {
	cursor := schema.JobCursor{
		Network:               string(network),
		JobType:               string(jobType),
		ContractAddress:       domain.NormalizeAddress(contractAddress),
		ProcessingBlockNumber: startBlock,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "network"}, {Name: "job_type"}, {Name: "contract_address"}},
		DoNothing: true,
	}).Create(&cursor).Error
	if err != nil {
		return fmt.Errorf("failed to create job cursor: %w", err)
	}

	return nil
}

// AdvanceJobCursor increments the processing block number by exactly one
func (s *pgStore) AdvanceJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string, blockTime *time.Time) error {
	updates := map[string]interface{}{
		"processing_block_number": gorm.Expr("processing_block_number + 1"),
		"updated_at":              time.Now(),
	}
	if blockTime != nil {
		updates["processing_block_time"] = *blockTime
	}

	result := s.db.WithContext(ctx).Model(&schema.JobCursor{}).
		Where("network = ? AND job_type = ? AND contract_address = ?",
			string(network), string(jobType), domain.NormalizeAddress(contractAddress)).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to advance job cursor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}
