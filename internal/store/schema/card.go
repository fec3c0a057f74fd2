package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Card represents the cards table - one row per on-chain token (one
// identifier within one contract). Created by mint reconciliation; deleted
// only when its last balance is removed, which cascades to its sales.
type Card struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the canonical card identifier: "<contract>-0x<hex identifier>"
	TokenID string `gorm:"column:token_id;not null;uniqueIndex;type:text"`
	// Identifier is the token id within the contract
	Identifier uint64 `gorm:"column:identifier;not null;uniqueIndex:idx_cards_collection_identifier,priority:2"`
	// CollectionID references the owning collection
	CollectionID int64 `gorm:"column:collection_id;not null;uniqueIndex:idx_cards_collection_identifier,priority:1"`
	// CreatorID is the internal user id of the minter
	CreatorID string `gorm:"column:creator_id;not null;type:text"`
	// TotalSupply is the number of editions in existence. Invariant: equals
	// the sum of all balance token amounts after every reconciliation step.
	TotalSupply uint64 `gorm:"column:total_supply;not null"`
	// HasSale caches whether at least one open sale exists for this card
	HasSale bool `gorm:"column:has_sale;not null;default:false"`
	// Name is copied from pre-stored token metadata
	Name string `gorm:"column:name;not null;type:text"`
	// Description is copied from pre-stored token metadata
	Description *string `gorm:"column:description;type:text"`
	// Image is the primary media reference from token metadata
	Image datatypes.JSON `gorm:"column:image;type:jsonb"`
	// Animation is the secondary media reference from token metadata
	Animation datatypes.JSON `gorm:"column:animation;type:jsonb"`
	// Attributes holds the token trait list from metadata
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// CreatedAt is the timestamp when this card was minted into the ledger
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Collection Collection    `gorm:"foreignKey:CollectionID"`
	Balances   []CardBalance `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Sales      []Sale        `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Card model
func (Card) TableName() string {
	return "cards"
}
