package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CardMetadata represents the card_metadata table - descriptive token
// metadata stored on the platform at mint-request time, keyed by the contract
// address and the on-chain token identifier. Mint reconciliation copies these
// fields onto the created card; tokens without a row here are dropped.
type CardMetadata struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the lower-cased contract address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_card_metadata_contract_identifier,priority:1"`
	// Identifier is the token id within the contract
	Identifier uint64 `gorm:"column:identifier;not null;uniqueIndex:idx_card_metadata_contract_identifier,priority:2"`
	// Name is the token name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the token description
	Description *string `gorm:"column:description;type:text"`
	// Image is an opaque stored-file reference
	Image datatypes.JSON `gorm:"column:image;type:jsonb"`
	// Animation is an opaque stored-file reference
	Animation datatypes.JSON `gorm:"column:animation;type:jsonb"`
	// Attributes holds the token trait list
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// CreatedAt is the timestamp when the metadata was stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CardMetadata model
func (CardMetadata) TableName() string {
	return "card_metadata"
}
