package schema

import (
	"time"
)

// CardBalance represents the card_balances table - one owner's holding of one
// card. Invariant: token_amount is never persisted at or below zero; a
// balance whose amount reaches zero is deleted, not kept at zero.
type CardBalance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CardID references the owned card
	CardID int64 `gorm:"column:card_id;not null;uniqueIndex:idx_card_balances_card_user,priority:1"`
	// UserID is the owner's internal user id
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_card_balances_card_user,priority:2"`
	// EthAddress is the owner's chain address (lower-cased)
	EthAddress string `gorm:"column:eth_address;not null;type:text;index"`
	// TokenAmount is the number of editions owned
	TokenAmount uint64 `gorm:"column:token_amount;not null"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Card Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CardBalance model
func (CardBalance) TableName() string {
	return "card_balances"
}
