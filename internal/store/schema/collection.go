package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Collection represents the collections table - one row per tracked token
// contract. Created by contract-creation reconciliation or by first-sync of a
// known contract; never deleted once created.
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractID is the lower-cased chain address of the contract
	ContractID string `gorm:"column:contract_id;not null;uniqueIndex;type:text"`
	// Network identifies the blockchain deployment
	Network string `gorm:"column:network;not null;type:text"`
	// UserID references the creator's internal user id
	UserID string `gorm:"column:user_id;not null;type:text"`
	// Name is the declared on-chain collection name
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the collection ticker symbol, when known
	Symbol *string `gorm:"column:symbol;type:text"`
	// Description is copied from pre-registered metadata, when present
	Description *string `gorm:"column:description;type:text"`
	// Logo is an opaque stored-file reference (key, location, bucket, ...)
	Logo datatypes.JSON `gorm:"column:logo;type:jsonb"`
	// Links holds external links copied from pre-registered metadata
	Links datatypes.JSON `gorm:"column:links;type:jsonb"`
	// URI is the on-chain metadata URI, when the contract declared one
	URI *string `gorm:"column:uri;type:text"`
	// CreatedAt is the timestamp when this collection was first synced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Cards []Card `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
