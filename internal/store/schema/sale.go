package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SaleStatus values persisted in the sales table
const (
	SaleStatusOpen = "sale"
	SaleStatusSold = "sold"
)

// Sale represents the sales table - one signed maker order listing a quantity
// of a card. Created by the order-placement flow; transitioned to sold by
// sale-settlement reconciliation; force-deleted by reconciliation when the
// maker's balance no longer covers the listed quantity.
type Sale struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OrderHash uniquely identifies the maker order
	OrderHash string `gorm:"column:order_hash;not null;uniqueIndex;type:text"`
	// Network identifies the blockchain deployment
	Network string `gorm:"column:network;not null;type:text;index:idx_sales_network_order,priority:1"`
	// CardID references the listed card
	CardID int64 `gorm:"column:card_id;not null;index"`
	// UserID is the maker's internal user id
	UserID string `gorm:"column:user_id;not null;type:text"`
	// TokensCount is the listed quantity. Invariant: never exceeds the
	// maker's current balance on the card while the sale is open.
	TokensCount uint64 `gorm:"column:tokens_count;not null"`
	// Price is the unit price in the listed currency
	Price string `gorm:"column:price;not null;type:numeric(78,0)"`
	// Currency is the payment token symbol or address
	Currency string `gorm:"column:currency;not null;type:text"`
	// Status is the sale lifecycle state (sale or sold)
	Status string `gorm:"column:status;not null;type:text;index"`
	// Signature is the maker's order signature
	Signature string `gorm:"column:signature;not null;type:text"`
	// Order is the raw signed-order payload
	Order datatypes.JSON `gorm:"column:order_payload;type:jsonb"`
	// SaleContract is the marketplace contract the order targets
	SaleContract string `gorm:"column:sale_contract;not null;type:text"`
	// CreatedAt is the timestamp when the order was listed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the sale was last touched
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Card Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
