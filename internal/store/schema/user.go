package schema

import (
	"time"
)

// User represents the users table - internal identities resolved from chain
// addresses. The address is the sole required identity attribute for users
// created by the sync path.
type User struct {
	// ID is the internal user id (uuid)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// EthAddress is the lower-cased chain address
	EthAddress string `gorm:"column:eth_address;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when this user was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
