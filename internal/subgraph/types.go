package subgraph

import (
	"fmt"
	"strconv"
)

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

// GraphQLError represents one error entry in a GraphQL response
type GraphQLError struct {
	Message string `json:"message"`
}

// CreatedCollection is a contract-creation event row from the indexer.
// Numeric fields arrive as decimal strings.
type CreatedCollection struct {
	Contract    string  `json:"contract"`
	Creator     string  `json:"creator"`
	Name        string  `json:"name"`
	Symbol      *string `json:"symbol"`
	URI         *string `json:"uri"`
	BlockNumber string  `json:"blockNumber"`
	Timestamp   string  `json:"timestamp"`
	TxHash      string  `json:"txHash"`
}

// CreatedToken is a mint event row from the indexer
type CreatedToken struct {
	Contract    string `json:"contract"`
	Identifier  string `json:"identifier"`
	Creator     string `json:"creator"`
	Value       string `json:"value"`
	URI         string `json:"uri"`
	BlockNumber string `json:"blockNumber"`
	Timestamp   string `json:"timestamp"`
	TxHash      string `json:"txHash"`
}

// BurnedToken is a burn event row from the indexer
type BurnedToken struct {
	Contract    string `json:"contract"`
	Identifier  string `json:"identifier"`
	From        string `json:"from"`
	Value       string `json:"value"`
	BlockNumber string `json:"blockNumber"`
	Timestamp   string `json:"timestamp"`
	TxHash      string `json:"txHash"`
}

// TransferToken is a transfer event row from the indexer. Mints and burns are
// indexed separately and never appear here.
type TransferToken struct {
	Contract    string `json:"contract"`
	Identifier  string `json:"identifier"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	BlockNumber string `json:"blockNumber"`
	Timestamp   string `json:"timestamp"`
	TxHash      string `json:"txHash"`
}

// SellMatch is an order-fill event row from the indexer, emitted by a
// marketplace sale contract
type SellMatch struct {
	OrderHash   string `json:"orderHash"`
	Seller      string `json:"seller"`
	Buyer       string `json:"buyer"`
	Contract    string `json:"contract"`
	Identifier  string `json:"identifier"`
	TokensCount string `json:"tokensCount"`
	BlockNumber string `json:"blockNumber"`
	Timestamp   string `json:"timestamp"`
	TxHash      string `json:"txHash"`
}

// ParseUint64 parses one of the indexer's decimal string numbers
func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as uint64: %w", s, err)
	}
	return v, nil
}

// Valid reports whether the row carries every field reconciliation needs
func (t CreatedCollection) Valid() bool {
	return t.Contract != "" && t.Creator != "" && t.BlockNumber != ""
}

// Valid reports whether the row carries every field reconciliation needs
func (t CreatedToken) Valid() bool {
	if t.Contract == "" || t.Creator == "" || t.Identifier == "" {
		return false
	}
	v, err := ParseUint64(t.Value)
	return err == nil && v > 0
}

// Valid reports whether the row carries every field reconciliation needs
func (t BurnedToken) Valid() bool {
	if t.Contract == "" || t.From == "" || t.Identifier == "" {
		return false
	}
	v, err := ParseUint64(t.Value)
	return err == nil && v > 0
}

// Valid reports whether the row carries every field reconciliation needs
func (t TransferToken) Valid() bool {
	if t.Contract == "" || t.From == "" || t.To == "" || t.Identifier == "" {
		return false
	}
	v, err := ParseUint64(t.Value)
	return err == nil && v > 0
}

// Valid reports whether the row carries every field reconciliation needs
func (t SellMatch) Valid() bool {
	if t.OrderHash == "" || t.Buyer == "" || t.Seller == "" {
		return false
	}
	v, err := ParseUint64(t.TokensCount)
	return err == nil && v > 0
}
