package subgraph_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/mocks"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
)

const testAPIURL = "https://indexer.palette.io/subgraphs/marketplace"

type testClientMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	client     subgraph.Client
}

func setupTestClient(t *testing.T) *testClientMocks {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	return &testClientMocks{
		ctrl:       ctrl,
		httpClient: httpClient,
		client:     subgraph.NewClient(httpClient, testAPIURL, adapter.NewJSON()),
	}
}

func tearDownTestClient(m *testClientMocks) {
	m.ctrl.Finish()
}

// decodeRequest reads the posted body back into a GraphQLRequest with typed
// variables
func decodeRequest(t *testing.T, body io.Reader) (subgraph.GraphQLRequest, map[string]interface{}) {
	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	var request subgraph.GraphQLRequest
	require.NoError(t, json.Unmarshal(raw, &request))

	variables, _ := request.Variables.(map[string]interface{})
	return request, variables
}

func TestGetHeadBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the meta block number", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
				request, _ := decodeRequest(t, body)
				assert.Equal(t, "GetHeadBlock", request.OperationName)
				return []byte(`{"data":{"_meta":{"block":{"number":123456}}}}`), nil
			})

		head, err := m.client.GetHeadBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(123456), head)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := m.client.GetHeadBlock(ctx)
		assert.Error(t, err)
	})

	t.Run("surfaces GraphQL errors", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			Return([]byte(`{"errors":[{"message":"indexer is syncing"}]}`), nil)

		_, err := m.client.GetHeadBlock(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "indexer is syncing")
	})
}

func TestGetCreatedTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("filters on the exact block number and pages with limit and offset", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
				request, variables := decodeRequest(t, body)
				assert.Equal(t, "GetCreatedTokens", request.OperationName)
				assert.Equal(t, "50", variables["blockNumber"])
				assert.Equal(t, float64(100), variables["limit"])
				assert.Equal(t, float64(0), variables["offset"])
				return []byte(`{"data":{"createdTokens":[
					{"contract":"0xabc","identifier":"7","creator":"0xcafe","value":"10","uri":"https://palette.io/tokens/7","blockNumber":"50","timestamp":"1717243200","txHash":"0xdead"}
				]}}`), nil
			})

		rows, err := m.client.GetCreatedTokens(ctx, 50, 100, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "0xabc", rows[0].Contract)
		assert.Equal(t, "7", rows[0].Identifier)
		assert.Equal(t, "10", rows[0].Value)
		assert.Equal(t, "https://palette.io/tokens/7", rows[0].URI)
	})
}

func TestGetSellMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes the query to one sale contract", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
				_, variables := decodeRequest(t, body)
				assert.Equal(t, "0xmarket", variables["saleContract"])
				assert.Equal(t, "50", variables["blockNumber"])
				return []byte(`{"data":{"sellMatches":[
					{"orderHash":"0xorder1","seller":"0xcafe","buyer":"0xbeef","tokensCount":"2","blockNumber":"50","timestamp":"1717243200"}
				]}}`), nil
			})

		rows, err := m.client.GetSellMatches(ctx, "0xmarket", 50, 100, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "0xorder1", rows[0].OrderHash)
	})
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("pages until a short page comes back", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		fullPage := `{"data":{"burnedTokens":[
			{"contract":"0xabc","identifier":"1","from":"0xcafe","value":"1","blockNumber":"50","timestamp":"1717243200"},
			{"contract":"0xabc","identifier":"2","from":"0xcafe","value":"1","blockNumber":"50","timestamp":"1717243200"}
		]}}`
		shortPage := `{"data":{"burnedTokens":[
			{"contract":"0xabc","identifier":"3","from":"0xcafe","value":"1","blockNumber":"50","timestamp":"1717243200"}
		]}}`

		gomock.InOrder(
			m.httpClient.EXPECT().
				Post(ctx, testAPIURL, "application/json", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
					_, variables := decodeRequest(t, body)
					assert.Equal(t, float64(0), variables["offset"])
					return []byte(fullPage), nil
				}),
			m.httpClient.EXPECT().
				Post(ctx, testAPIURL, "application/json", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
					_, variables := decodeRequest(t, body)
					assert.Equal(t, float64(2), variables["offset"])
					return []byte(shortPage), nil
				}),
		)

		rows, err := m.client.FetchAllBurnedTokens(ctx, 50, 2)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "1", rows[0].Identifier)
		assert.Equal(t, "3", rows[2].Identifier)
	})

	t.Run("empty block resolves to no rows", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			Return([]byte(`{"data":{"burnedTokens":[]}}`), nil)

		rows, err := m.client.FetchAllBurnedTokens(ctx, 50, 2)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("mid-pagination failure discards the partial result", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		fullPage := `{"data":{"burnedTokens":[
			{"contract":"0xabc","identifier":"1","from":"0xcafe","value":"1","blockNumber":"50","timestamp":"1717243200"},
			{"contract":"0xabc","identifier":"2","from":"0xcafe","value":"1","blockNumber":"50","timestamp":"1717243200"}
		]}}`

		gomock.InOrder(
			m.httpClient.EXPECT().
				Post(ctx, testAPIURL, "application/json", gomock.Any()).
				Return([]byte(fullPage), nil),
			m.httpClient.EXPECT().
				Post(ctx, testAPIURL, "application/json", gomock.Any()).
				Return(nil, errors.New("connection reset")),
		)

		rows, err := m.client.FetchAllBurnedTokens(ctx, 50, 2)
		assert.Error(t, err)
		assert.Nil(t, rows)
	})

	t.Run("zero limit falls back to the default page size", func(t *testing.T) {
		m := setupTestClient(t)
		defer tearDownTestClient(m)

		m.httpClient.EXPECT().
			Post(ctx, testAPIURL, "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
				_, variables := decodeRequest(t, body)
				assert.Equal(t, float64(subgraph.DefaultPageLimit), variables["limit"])
				return []byte(`{"data":{"burnedTokens":[]}}`), nil
			})

		_, err := m.client.FetchAllBurnedTokens(ctx, 50, 0)
		require.NoError(t, err)
	})
}

func TestEventValidation(t *testing.T) {
	t.Run("rows missing required fields are invalid", func(t *testing.T) {
		assert.False(t, subgraph.CreatedToken{Identifier: "7", Creator: "0xcafe", Value: "1"}.Valid())
		assert.False(t, subgraph.BurnedToken{Contract: "0xabc", Identifier: "7", Value: "1"}.Valid())
		assert.False(t, subgraph.TransferToken{Contract: "0xabc", Identifier: "7", From: "0xcafe", Value: "1"}.Valid())
		assert.False(t, subgraph.SellMatch{OrderHash: "0xorder1", Buyer: "0xbeef", TokensCount: "1"}.Valid())
	})

	t.Run("zero and unparseable amounts are invalid", func(t *testing.T) {
		base := subgraph.CreatedToken{Contract: "0xabc", Identifier: "7", Creator: "0xcafe"}

		zero := base
		zero.Value = "0"
		assert.False(t, zero.Valid())

		garbage := base
		garbage.Value = "not-a-number"
		assert.False(t, garbage.Valid())

		negative := base
		negative.Value = "-1"
		assert.False(t, negative.Valid())
	})

	t.Run("complete rows are valid", func(t *testing.T) {
		assert.True(t, subgraph.CreatedToken{Contract: "0xabc", Identifier: "7", Creator: "0xcafe", Value: "1"}.Valid())
		assert.True(t, subgraph.BurnedToken{Contract: "0xabc", Identifier: "7", From: "0xcafe", Value: "1"}.Valid())
		assert.True(t, subgraph.SellMatch{OrderHash: "0xorder1", Seller: "0xcafe", Buyer: "0xbeef", TokensCount: "1"}.Valid())
	})
}
