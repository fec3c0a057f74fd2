package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Network identifies a blockchain deployment the marketplace syncs against
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
)

// IsValidNetwork checks if a network is one we know how to sync
func IsValidNetwork(network Network) bool {
	return network == NetworkEthereum || network == NetworkPolygon
}

// JobType names an incremental synchronization job with a persisted block cursor
type JobType string

const (
	JobCreatedContractListener JobType = "createdContractListener"
	JobCreatedTokenListener    JobType = "createdTokenListener"
	JobBurnedTokenListener     JobType = "burnedTokenListener"
	JobTransferTokenListener   JobType = "transferTokenListener"
	// JobSaleListener runs once per configured sale contract
	JobSaleListener JobType = "saleListener"
	// JobLaunchpadSaleListener is reserved; no reconciliation is wired for it
	JobLaunchpadSaleListener JobType = "launchpadSaleListener"
)

// SaleStatus is the lifecycle state of a listed order
type SaleStatus string

const (
	SaleStatusOpen SaleStatus = "sale"
	SaleStatusSold SaleStatus = "sold"
)

// NormalizeAddress lower-cases a chain address. All addresses are persisted
// and compared in this form.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsValidAddress checks whether a string is a well-formed hex chain address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// CardTokenID derives the canonical card identifier for a token within a
// contract: "<contract>-0x<hex identifier>"
func CardTokenID(contractAddress string, identifier uint64) string {
	return fmt.Sprintf("%s-0x%x", NormalizeAddress(contractAddress), identifier)
}

// MarketplaceEventType classifies reconciliation outcome events
type MarketplaceEventType string

const (
	EventTypeCollectionCreated MarketplaceEventType = "collection.created"
	EventTypeCardMinted        MarketplaceEventType = "card.minted"
	EventTypeCardBurned        MarketplaceEventType = "card.burned"
	EventTypeCardTransferred   MarketplaceEventType = "card.transferred"
	EventTypeSaleSettled       MarketplaceEventType = "sale.settled"
)

// MarketplaceEvent is the normalized outcome event published to the message
// broker after a block has been reconciled
type MarketplaceEvent struct {
	EventID     string               `json:"event_id"` // ULID, time-sortable
	EventType   MarketplaceEventType `json:"event_type"`
	Network     Network              `json:"network"`
	Contract    string               `json:"contract,omitempty"`
	CardID      string               `json:"card_id,omitempty"`
	OrderHash   string               `json:"order_hash,omitempty"`
	FromAddress string               `json:"from_address,omitempty"`
	ToAddress   string               `json:"to_address,omitempty"`
	Amount      uint64               `json:"amount,omitempty"`
	BlockNumber uint64               `json:"block_number"`
	Timestamp   time.Time            `json:"timestamp"`
}
