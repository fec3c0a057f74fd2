package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionMetadata represents the collection_metadata table - descriptive
// metadata pre-registered on the platform before the contract appears
// on-chain, keyed by the owner and a platform-issued slug. Contract-creation
// reconciliation resolves a contract URI to one of these rows and links it
// back to the created collection.
type CollectionMetadata struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the registering user's internal id
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_collection_metadata_user_slug,priority:1"`
	// Slug is the platform-issued identifier embedded in the contract URI
	Slug string `gorm:"column:slug;not null;type:text;uniqueIndex:idx_collection_metadata_user_slug,priority:2"`
	// Symbol is the declared ticker symbol
	Symbol *string `gorm:"column:symbol;type:text"`
	// Description is the collection description
	Description *string `gorm:"column:description;type:text"`
	// Logo is an opaque stored-file reference
	Logo datatypes.JSON `gorm:"column:logo;type:jsonb"`
	// Links holds external links
	Links datatypes.JSON `gorm:"column:links;type:jsonb"`
	// CollectionID is set once the on-chain collection has been created
	CollectionID *int64 `gorm:"column:collection_id;index"`
	// CreatedAt is the timestamp when the metadata was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollectionMetadata model
func (CollectionMetadata) TableName() string {
	return "collection_metadata"
}
