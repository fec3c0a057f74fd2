package subgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/palettehq/marketplace-sync/internal/adapter"
)

// DefaultPageLimit is the page size used by the FetchAll helpers when the
// caller passes 0
const DefaultPageLimit = 1000

// Client defines the interface for indexer subgraph operations to enable mocking.
// One client talks to one network's subgraph endpoint. Every event query is
// filtered to a single exact block number; callers page with limit/offset
// until a short page comes back.
//
//go:generate mockgen -source=client.go -destination=../mocks/subgraph_client.go -package=mocks -mock_names=Client=MockSubgraphClient
type Client interface {
	// GetHeadBlock fetches the newest block the indexer has fully processed
	GetHeadBlock(ctx context.Context) (uint64, error)
	// GetCreatedCollections fetches one page of contract-creation events at a block
	GetCreatedCollections(ctx context.Context, blockNumber uint64, limit, offset int) ([]CreatedCollection, error)
	// GetCreatedTokens fetches one page of mint events at a block
	GetCreatedTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]CreatedToken, error)
	// GetBurnedTokens fetches one page of burn events at a block
	GetBurnedTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]BurnedToken, error)
	// GetTransferTokens fetches one page of transfer events at a block
	GetTransferTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]TransferToken, error)
	// GetSellMatches fetches one page of order-fill events emitted by one sale
	// contract at a block
	GetSellMatches(ctx context.Context, saleContract string, blockNumber uint64, limit, offset int) ([]SellMatch, error)

	// FetchAllCreatedCollections pages through every contract-creation event at a block
	FetchAllCreatedCollections(ctx context.Context, blockNumber uint64, limit int) ([]CreatedCollection, error)
	// FetchAllCreatedTokens pages through every mint event at a block
	FetchAllCreatedTokens(ctx context.Context, blockNumber uint64, limit int) ([]CreatedToken, error)
	// FetchAllBurnedTokens pages through every burn event at a block
	FetchAllBurnedTokens(ctx context.Context, blockNumber uint64, limit int) ([]BurnedToken, error)
	// FetchAllTransferTokens pages through every transfer event at a block
	FetchAllTransferTokens(ctx context.Context, blockNumber uint64, limit int) ([]TransferToken, error)
	// FetchAllSellMatches pages through every order-fill event at a block
	FetchAllSellMatches(ctx context.Context, saleContract string, blockNumber uint64, limit int) ([]SellMatch, error)
}

// IndexerClient implements Client against a GraphQL subgraph endpoint
type IndexerClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new indexer subgraph client for one endpoint
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &IndexerClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// query posts one GraphQL request and decodes the data payload into out
func (c *IndexerClient) query(ctx context.Context, operationName, query string, variables map[string]interface{}, out interface{}) error {
	request := GraphQLRequest{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	responseBody, err := c.httpClient.Post(ctx, c.apiURL, "application/json", bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to call indexer: %w", err)
	}

	var envelope struct {
		Errors []GraphQLError `json:"errors"`
	}
	if err := c.json.Unmarshal(responseBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal indexer response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("indexer returned error: %s", envelope.Errors[0].Message)
	}

	if err := c.json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal indexer response: %w", err)
	}

	return nil
}

// GetHeadBlock fetches the newest block the indexer has fully processed
func (c *IndexerClient) GetHeadBlock(ctx context.Context) (uint64, error) {
	query := `query GetHeadBlock {
  _meta {
    block {
      number
    }
  }
}`

	var response struct {
		Data struct {
			Meta struct {
				Block struct {
					Number uint64 `json:"number"`
				} `json:"block"`
			} `json:"_meta"`
		} `json:"data"`
	}
	if err := c.query(ctx, "GetHeadBlock", query, nil, &response); err != nil {
		return 0, err
	}

	return response.Data.Meta.Block.Number, nil
}

// GetCreatedCollections fetches one page of contract-creation events at a block
func (c *IndexerClient) GetCreatedCollections(ctx context.Context, blockNumber uint64, limit, offset int) ([]CreatedCollection, error) {
	query := `query GetCreatedCollections($blockNumber: BigInt!, $limit: Int!, $offset: Int!) {
  createdCollections(
    where: {blockNumber: $blockNumber}
    orderBy: id
    first: $limit
    skip: $offset
  ) {
    contract
    creator
    name
    symbol
    uri
    blockNumber
    timestamp
    txHash
  }
}`

	var response struct {
		Data struct {
			CreatedCollections []CreatedCollection `json:"createdCollections"`
		} `json:"data"`
	}
	err := c.query(ctx, "GetCreatedCollections", query, pageVariables(blockNumber, limit, offset), &response)
	if err != nil {
		return nil, err
	}

	return response.Data.CreatedCollections, nil
}

// GetCreatedTokens fetches one page of mint events at a block
func (c *IndexerClient) GetCreatedTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]CreatedToken, error) {
	query := `query GetCreatedTokens($blockNumber: BigInt!, $limit: Int!, $offset: Int!) {
  createdTokens(
    where: {blockNumber: $blockNumber}
    orderBy: id
    first: $limit
    skip: $offset
  ) {
    contract
    identifier
    creator
    value
    uri
    blockNumber
    timestamp
    txHash
  }
}`

	var response struct {
		Data struct {
			CreatedTokens []CreatedToken `json:"createdTokens"`
		} `json:"data"`
	}
	err := c.query(ctx, "GetCreatedTokens", query, pageVariables(blockNumber, limit, offset), &response)
	if err != nil {
		return nil, err
	}

	return response.Data.CreatedTokens, nil
}

// GetBurnedTokens fetches one page of burn events at a block
func (c *IndexerClient) GetBurnedTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]BurnedToken, error) {
	query := `query GetBurnedTokens($blockNumber: BigInt!, $limit: Int!, $offset: Int!) {
  burnedTokens(
    where: {blockNumber: $blockNumber}
    orderBy: id
    first: $limit
    skip: $offset
  ) {
    contract
    identifier
    from
    value
    blockNumber
    timestamp
    txHash
  }
}`

	var response struct {
		Data struct {
			BurnedTokens []BurnedToken `json:"burnedTokens"`
		} `json:"data"`
	}
	err := c.query(ctx, "GetBurnedTokens", query, pageVariables(blockNumber, limit, offset), &response)
	if err != nil {
		return nil, err
	}

	return response.Data.BurnedTokens, nil
}

// GetTransferTokens fetches one page of transfer events at a block
func (c *IndexerClient) GetTransferTokens(ctx context.Context, blockNumber uint64, limit, offset int) ([]TransferToken, error) {
	query := `query GetTransferTokens($blockNumber: BigInt!, $limit: Int!, $offset: Int!) {
  transferTokens(
    where: {blockNumber: $blockNumber}
    orderBy: id
    first: $limit
    skip: $offset
  ) {
    contract
    identifier
    from
    to
    value
    blockNumber
    timestamp
    txHash
  }
}`

	var response struct {
		Data struct {
			TransferTokens []TransferToken `json:"transferTokens"`
		} `json:"data"`
	}
	err := c.query(ctx, "GetTransferTokens", query, pageVariables(blockNumber, limit, offset), &response)
	if err != nil {
		return nil, err
	}

	return response.Data.TransferTokens, nil
}

// GetSellMatches fetches one page of order-fill events emitted by one sale
// contract at a block
func (c *IndexerClient) GetSellMatches(ctx context.Context, saleContract string, blockNumber uint64, limit, offset int) ([]SellMatch, error) {
	query := `query GetSellMatches($saleContract: Bytes!, $blockNumber: BigInt!, $limit: Int!, $offset: Int!) {
  sellMatches(
    where: {emitter: $saleContract, blockNumber: $blockNumber}
    orderBy: id
    first: $limit
    skip: $offset
  ) {
    orderHash
    seller
    buyer
    contract
    identifier
    tokensCount
    blockNumber
    timestamp
    txHash
  }
}`

	variables := pageVariables(blockNumber, limit, offset)
	variables["saleContract"] = saleContract

	var response struct {
		Data struct {
			SellMatches []SellMatch `json:"sellMatches"`
		} `json:"data"`
	}
	err := c.query(ctx, "GetSellMatches", query, variables, &response)
	if err != nil {
		return nil, err
	}

	return response.Data.SellMatches, nil
}

// FetchAllCreatedCollections pages through every contract-creation event at a block
func (c *IndexerClient) FetchAllCreatedCollections(ctx context.Context, blockNumber uint64, limit int) ([]CreatedCollection, error) {
	return fetchAll(limit, func(limit, offset int) ([]CreatedCollection, error) {
		return c.GetCreatedCollections(ctx, blockNumber, limit, offset)
	})
}

// FetchAllCreatedTokens pages through every mint event at a block
func (c *IndexerClient) FetchAllCreatedTokens(ctx context.Context, blockNumber uint64, limit int) ([]CreatedToken, error) {
	return fetchAll(limit, func(limit, offset int) ([]CreatedToken, error) {
		return c.GetCreatedTokens(ctx, blockNumber, limit, offset)
	})
}

// FetchAllBurnedTokens pages through every burn event at a block
func (c *IndexerClient) FetchAllBurnedTokens(ctx context.Context, blockNumber uint64, limit int) ([]BurnedToken, error) {
	return fetchAll(limit, func(limit, offset int) ([]BurnedToken, error) {
		return c.GetBurnedTokens(ctx, blockNumber, limit, offset)
	})
}

// FetchAllTransferTokens pages through every transfer event at a block
func (c *IndexerClient) FetchAllTransferTokens(ctx context.Context, blockNumber uint64, limit int) ([]TransferToken, error) {
	return fetchAll(limit, func(limit, offset int) ([]TransferToken, error) {
		return c.GetTransferTokens(ctx, blockNumber, limit, offset)
	})
}

// FetchAllSellMatches pages through every order-fill event at a block
func (c *IndexerClient) FetchAllSellMatches(ctx context.Context, saleContract string, blockNumber uint64, limit int) ([]SellMatch, error) {
	return fetchAll(limit, func(limit, offset int) ([]SellMatch, error) {
		return c.GetSellMatches(ctx, saleContract, blockNumber, limit, offset)
	})
}

func pageVariables(blockNumber uint64, limit, offset int) map[string]interface{} {
	return map[string]interface{}{
		"blockNumber": fmt.Sprintf("%d", blockNumber),
		"limit":       limit,
		"offset":      offset,
	}
}

// fetchAll pages a query until a page shorter than the limit comes back. A
// fetch error mid-way discards the partial result so callers never reconcile
// a truncated block.
func fetchAll[T any](limit int, page func(limit, offset int) ([]T, error)) ([]T, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	var all []T
	offset := 0
	for {
		rows, err := page(limit, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, rows...)
		if len(rows) < limit {
			return all, nil
		}
		offset += limit
	}
}
