package schema

import (
	"time"
)

// JobCursor represents the job_cursors table - one row per incremental sync
// job, holding the next block number to process. Seeded once from per-network
// configuration; the block number is only ever incremented, never decremented,
// and rows are never deleted.
type JobCursor struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Network identifies the blockchain deployment
	Network string `gorm:"column:network;not null;type:text;uniqueIndex:idx_job_cursors_identity,priority:1"`
	// JobType names the sync job
	JobType string `gorm:"column:job_type;not null;type:text;uniqueIndex:idx_job_cursors_identity,priority:2"`
	// ContractAddress scopes the cursor to a single contract (sale listeners);
	// empty string for unscoped jobs
	ContractAddress string `gorm:"column:contract_address;not null;default:'';type:text;uniqueIndex:idx_job_cursors_identity,priority:3"`
	// ProcessingBlockNumber is the next block to read
	ProcessingBlockNumber uint64 `gorm:"column:processing_block_number;not null;default:0"`
	// ProcessingBlockTime is the timestamp of the block last observed, when known
	ProcessingBlockTime *time.Time `gorm:"column:processing_block_time;type:timestamptz"`
	// CreatedAt is the timestamp when this cursor was seeded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this cursor was last advanced
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the JobCursor model
func (JobCursor) TableName() string {
	return "job_cursors"
}
