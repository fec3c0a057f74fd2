package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

// CursorStore persists one block cursor per sync job
//
//go:generate mockgen -destination=../mocks/store.go -package=mocks github.com/palettehq/marketplace-sync/internal/store Store
type CursorStore interface {
	// GetJobCursor retrieves the cursor for a job; returns
	// domain.ErrJobNotFound when the job was never seeded
	GetJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string) (*schema.JobCursor, error)
	// CreateJobCursor seeds a cursor at the given start block; creating an
	// already-seeded cursor is a no-op
	CreateJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string, startBlock uint64) error
	// AdvanceJobCursor atomically increments the processing block number by
	// exactly one
	AdvanceJobCursor(ctx context.Context, network domain.Network, jobType domain.JobType, contractAddress string, blockTime *time.Time) error
}

// LedgerStore persists collections, cards and the embedded balance ledger
type LedgerStore interface {
	// GetCollectionByContract retrieves a collection by its contract address;
	// returns (nil, nil) when untracked
	GetCollectionByContract(ctx context.Context, network domain.Network, contractAddress string) (*schema.Collection, error)
	// GetCollectionsByContracts retrieves collections for multiple contract
	// addresses, keyed by normalized address
	GetCollectionsByContracts(ctx context.Context, network domain.Network, contractAddresses []string) (map[string]*schema.Collection, error)
	// CreateCollection creates a new collection
	CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.Collection, error)

	// GetCardByCollectionAndIdentifier retrieves a card by its position in a
	// collection; returns (nil, nil) when missing
	GetCardByCollectionAndIdentifier(ctx context.Context, collectionID int64, identifier uint64) (*schema.Card, error)
	// CreateCardMint creates a card together with its initial creator balance
	// in a single transaction
	CreateCardMint(ctx context.Context, input CreateCardMintInput) (*schema.Card, error)
	// DeleteCardCascade deletes a card with all of its balances and sales
	DeleteCardCascade(ctx context.Context, cardID int64) error
	// SetCardHasSale persists the recomputed has_sale cache
	SetCardHasSale(ctx context.Context, cardID int64, hasSale bool) error

	// GetBalance retrieves one owner's balance on a card; (nil, nil) when absent
	GetBalance(ctx context.Context, cardID int64, userID string) (*schema.CardBalance, error)
	// CountBalances counts the remaining balance rows on a card
	CountBalances(ctx context.Context, cardID int64) (int64, error)
	// DecrementBalance subtracts amount from an owner's balance, deleting the
	// row when it reaches zero; when reduceSupply is set the card's total
	// supply is decremented by the same amount in the same transaction
	DecrementBalance(ctx context.Context, cardID int64, userID string, amount uint64, reduceSupply bool) error
	// IncrementBalance adds amount to an owner's balance, creating the row
	// when none exists
	IncrementBalance(ctx context.Context, cardID int64, userID string, ethAddress string, amount uint64) error
	// MoveBalance moves amount from one owner to another in a single
	// transaction; total supply is unchanged
	MoveBalance(ctx context.Context, cardID int64, fromUserID string, toUserID string, toEthAddress string, amount uint64) error
}

// SaleStore persists the sale-order book
type SaleStore interface {
	// CreateSale records a newly listed maker order
	CreateSale(ctx context.Context, input CreateSaleInput) (*schema.Sale, error)
	// GetOpenSaleByOrderHash retrieves an open sale; (nil, nil) when no open
	// sale matches
	GetOpenSaleByOrderHash(ctx context.Context, network domain.Network, orderHash string) (*schema.Sale, error)
	// GetOpenSalesByMakerAndCard retrieves a maker's open sales on one card
	GetOpenSalesByMakerAndCard(ctx context.Context, cardID int64, userID string) ([]schema.Sale, error)
	// MarkSalesSold transitions the given orders to sold in one statement
	MarkSalesSold(ctx context.Context, orderHashes []string) error
	// DeleteSales removes the given sales
	DeleteSales(ctx context.Context, saleIDs []int64) error
	// HasOpenSales reports whether at least one open sale exists for a card
	HasOpenSales(ctx context.Context, cardID int64) (bool, error)
}

// UserDirectory resolves chain addresses to internal user identities,
// creating users for unseen addresses
type UserDirectory interface {
	// ResolveOrCreateUserByAddress resolves a single address
	ResolveOrCreateUserByAddress(ctx context.Context, address string) (*schema.User, error)
	// ResolveUsersByAddresses resolves many addresses in one round trip,
	// keyed by normalized address
	ResolveUsersByAddresses(ctx context.Context, addresses []string) (map[string]*schema.User, error)
}

// MetadataStore resolves pre-registered platform metadata
type MetadataStore interface {
	// GetCollectionMetadataByUserAndSlug resolves pre-registered contract
	// metadata; (nil, nil) when none matches
	GetCollectionMetadataByUserAndSlug(ctx context.Context, userID string, slug string) (*schema.CollectionMetadata, error)
	// LinkCollectionMetadata links a metadata record to its created collection
	LinkCollectionMetadata(ctx context.Context, metadataID int64, collectionID int64) error
	// GetCardMetadataByContractAndIdentifiers resolves pre-stored token
	// metadata for many identifiers of one contract, keyed by identifier
	GetCardMetadataByContractAndIdentifiers(ctx context.Context, contractAddress string, identifiers []uint64) (map[uint64]*schema.CardMetadata, error)
}

// Store is the full set of database operations
type Store interface {
	CursorStore
	LedgerStore
	SaleStore
	UserDirectory
	MetadataStore
}

// CreateCollectionInput carries the fields for a new collection
type CreateCollectionInput struct {
	Network     domain.Network
	ContractID  string
	UserID      string
	Name        string
	Symbol      *string
	Description *string
	Logo        datatypes.JSON
	Links       datatypes.JSON
	URI         *string
}

// CreateCardMintInput carries the fields for a new card and its initial balance
type CreateCardMintInput struct {
	TokenID      string
	Identifier   uint64
	CollectionID int64
	CreatorID    string
	CreatorAddr  string
	Value        uint64
	Name         string
	Description  *string
	Image        datatypes.JSON
	Animation    datatypes.JSON
	Attributes   datatypes.JSON
}

// CreateSaleInput carries the fields for a newly listed order
type CreateSaleInput struct {
	OrderHash    string
	Network      domain.Network
	CardID       int64
	UserID       string
	TokensCount  uint64
	Price        string
	Currency     string
	Signature    string
	Order        datatypes.JSON
	SaleContract string
}
