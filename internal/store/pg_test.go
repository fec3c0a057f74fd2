package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := testDB.AutoMigrate(
		&schema.User{},
		&schema.JobCursor{},
		&schema.Collection{},
		&schema.CollectionMetadata{},
		&schema.CardMetadata{},
		&schema.Card{},
		&schema.CardBalance{},
		&schema.Sale{},
	); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// initTestStore wraps each test in a transaction that is rolled back on
// cleanup, so tests never observe each other's rows
func initTestStore(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// =============================================================================
// Test Data Builders
// =============================================================================

func seedCollection(t *testing.T, s Store, contract string) *schema.Collection {
	ctx := context.Background()

	user, err := s.ResolveOrCreateUserByAddress(ctx, "0xCreator00000000000000000000000000000001")
	require.NoError(t, err)

	collection, err := s.CreateCollection(ctx, CreateCollectionInput{
		Network:    domain.NetworkEthereum,
		ContractID: contract,
		UserID:     user.ID,
		Name:       "Test Collection",
	})
	require.NoError(t, err)

	return collection
}

func seedCard(t *testing.T, s Store, collection *schema.Collection, identifier, value uint64) (*schema.Card, *schema.User) {
	ctx := context.Background()

	creator, err := s.ResolveOrCreateUserByAddress(ctx, "0xMinter000000000000000000000000000000001")
	require.NoError(t, err)

	card, err := s.CreateCardMint(ctx, CreateCardMintInput{
		TokenID:      domain.CardTokenID(collection.ContractID, identifier),
		Identifier:   identifier,
		CollectionID: collection.ID,
		CreatorID:    creator.ID,
		CreatorAddr:  creator.EthAddress,
		Value:        value,
		Name:         "Test Card",
	})
	require.NoError(t, err)

	return card, creator
}

func sumBalances(t *testing.T, s Store, cardID int64) uint64 {
	ctx := context.Background()

	pg, ok := s.(*pgStore)
	require.True(t, ok)

	var balances []schema.CardBalance
	require.NoError(t, pg.db.WithContext(ctx).Where("card_id = ?", cardID).Find(&balances).Error)

	var total uint64
	for _, b := range balances {
		total += b.TokenAmount
	}
	return total
}

// =============================================================================
// Job cursors
// =============================================================================

func TestJobCursor(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	t.Run("missing cursor returns ErrJobNotFound", func(t *testing.T) {
		_, err := s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "")
		assert.ErrorIs(t, err, domain.ErrJobNotFound)

		err = s.AdvanceJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "", nil)
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("create, read and advance", func(t *testing.T) {
		err := s.CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "", 100)
		require.NoError(t, err)

		cursor, err := s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(100), cursor.ProcessingBlockNumber)

		blockTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.AdvanceJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "", &blockTime))

		cursor, err = s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(101), cursor.ProcessingBlockNumber)
		require.NotNil(t, cursor.ProcessingBlockTime)
		assert.True(t, cursor.ProcessingBlockTime.Equal(blockTime))
	})

	t.Run("re-seeding keeps the existing position", func(t *testing.T) {
		err := s.CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "", 5)
		require.NoError(t, err)

		cursor, err := s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(101), cursor.ProcessingBlockNumber)
	})

	t.Run("sale cursors are scoped per contract", func(t *testing.T) {
		require.NoError(t, s.CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobSaleListener, "0xAAA1", 10))
		require.NoError(t, s.CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobSaleListener, "0xAAA2", 20))

		c1, err := s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobSaleListener, "0xAAA1")
		require.NoError(t, err)
		c2, err := s.GetJobCursor(ctx, domain.NetworkEthereum, domain.JobSaleListener, "0xAAA2")
		require.NoError(t, err)
		assert.Equal(t, uint64(10), c1.ProcessingBlockNumber)
		assert.Equal(t, uint64(20), c2.ProcessingBlockNumber)
	})
}

// =============================================================================
// Collections and cards
// =============================================================================

func TestCollectionLookup(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	collection := seedCollection(t, s, "0xABCDEF0000000000000000000000000000000001")

	t.Run("lookups are case-insensitive on the contract address", func(t *testing.T) {
		found, err := s.GetCollectionByContract(ctx, domain.NetworkEthereum, "0xABCDEF0000000000000000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, collection.ID, found.ID)
	})

	t.Run("unknown contract resolves to nil without error", func(t *testing.T) {
		found, err := s.GetCollectionByContract(ctx, domain.NetworkEthereum, "0x0000000000000000000000000000000000000099")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("batch lookup keys by normalized address", func(t *testing.T) {
		found, err := s.GetCollectionsByContracts(ctx, domain.NetworkEthereum, []string{
			"0xABCDEF0000000000000000000000000000000001",
			"0x0000000000000000000000000000000000000099",
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Contains(t, found, collection.ContractID)
	})
}

func TestCreateCardMint(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	collection := seedCollection(t, s, "0xabcdef0000000000000000000000000000000002")
	card, creator := seedCard(t, s, collection, 7, 10)

	t.Run("card and creator balance are created together", func(t *testing.T) {
		found, err := s.GetCardByCollectionAndIdentifier(ctx, collection.ID, 7)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, card.TokenID, found.TokenID)
		assert.Equal(t, uint64(10), found.TotalSupply)

		balance, err := s.GetBalance(ctx, card.ID, creator.ID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, uint64(10), balance.TokenAmount)

		assert.Equal(t, found.TotalSupply, sumBalances(t, s, card.ID))
	})

	t.Run("unknown identifier resolves to nil", func(t *testing.T) {
		found, err := s.GetCardByCollectionAndIdentifier(ctx, collection.ID, 999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

// =============================================================================
// Balances
// =============================================================================

func TestBalanceMovements(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	collection := seedCollection(t, s, "0xabcdef0000000000000000000000000000000003")
	card, creator := seedCard(t, s, collection, 1, 10)

	receiver, err := s.ResolveOrCreateUserByAddress(ctx, "0xReceiver0000000000000000000000000000001")
	require.NoError(t, err)

	t.Run("move splits a balance between two owners", func(t *testing.T) {
		require.NoError(t, s.MoveBalance(ctx, card.ID, creator.ID, receiver.ID, receiver.EthAddress, 4))

		senderBalance, err := s.GetBalance(ctx, card.ID, creator.ID)
		require.NoError(t, err)
		require.NotNil(t, senderBalance)
		assert.Equal(t, uint64(6), senderBalance.TokenAmount)

		receiverBalance, err := s.GetBalance(ctx, card.ID, receiver.ID)
		require.NoError(t, err)
		require.NotNil(t, receiverBalance)
		assert.Equal(t, uint64(4), receiverBalance.TokenAmount)

		assert.Equal(t, uint64(10), sumBalances(t, s, card.ID))
	})

	t.Run("move of the full balance deletes the sender row", func(t *testing.T) {
		require.NoError(t, s.MoveBalance(ctx, card.ID, creator.ID, receiver.ID, receiver.EthAddress, 6))

		senderBalance, err := s.GetBalance(ctx, card.ID, creator.ID)
		require.NoError(t, err)
		assert.Nil(t, senderBalance)

		count, err := s.CountBalances(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, uint64(10), sumBalances(t, s, card.ID))
	})

	t.Run("decrement with supply reduction keeps supply equal to balances", func(t *testing.T) {
		require.NoError(t, s.DecrementBalance(ctx, card.ID, receiver.ID, 3, true))

		found, err := s.GetCardByCollectionAndIdentifier(ctx, collection.ID, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(7), found.TotalSupply)
		assert.Equal(t, found.TotalSupply, sumBalances(t, s, card.ID))
	})

	t.Run("decrement of a missing balance returns ErrCardNotFound", func(t *testing.T) {
		err := s.DecrementBalance(ctx, card.ID, creator.ID, 1, false)
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})

	t.Run("increment creates the row when none exists", func(t *testing.T) {
		require.NoError(t, s.IncrementBalance(ctx, card.ID, creator.ID, creator.EthAddress, 2))
		require.NoError(t, s.IncrementBalance(ctx, card.ID, creator.ID, creator.EthAddress, 3))

		balance, err := s.GetBalance(ctx, card.ID, creator.ID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, uint64(5), balance.TokenAmount)
	})
}

func TestDeleteCardCascade(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	collection := seedCollection(t, s, "0xabcdef0000000000000000000000000000000004")
	card, creator := seedCard(t, s, collection, 2, 1)

	_, err := s.CreateSale(ctx, CreateSaleInput{
		OrderHash:    "0xorder-cascade",
		Network:      domain.NetworkEthereum,
		CardID:       card.ID,
		UserID:       creator.ID,
		TokensCount:  1,
		Price:        "1000000000000000000",
		Currency:     "ETH",
		Signature:    "0xsig",
		SaleContract: "0xmarket",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCardCascade(ctx, card.ID))

	found, err := s.GetCardByCollectionAndIdentifier(ctx, collection.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := s.CountBalances(ctx, card.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	sale, err := s.GetOpenSaleByOrderHash(ctx, domain.NetworkEthereum, "0xorder-cascade")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

// =============================================================================
// Sales
// =============================================================================

func TestSaleLifecycle(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	collection := seedCollection(t, s, "0xabcdef0000000000000000000000000000000005")
	card, creator := seedCard(t, s, collection, 3, 5)

	sale, err := s.CreateSale(ctx, CreateSaleInput{
		OrderHash:    "0xorder1",
		Network:      domain.NetworkEthereum,
		CardID:       card.ID,
		UserID:       creator.ID,
		TokensCount:  2,
		Price:        "5000000000000000000",
		Currency:     "ETH",
		Signature:    "0xsig",
		SaleContract: "0xMarket00000000000000000000000000000001",
	})
	require.NoError(t, err)
	assert.Equal(t, schema.SaleStatusOpen, sale.Status)

	t.Run("open sale is visible by order hash and maker", func(t *testing.T) {
		found, err := s.GetOpenSaleByOrderHash(ctx, domain.NetworkEthereum, "0xorder1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, sale.ID, found.ID)

		sales, err := s.GetOpenSalesByMakerAndCard(ctx, card.ID, creator.ID)
		require.NoError(t, err)
		assert.Len(t, sales, 1)

		hasOpen, err := s.HasOpenSales(ctx, card.ID)
		require.NoError(t, err)
		assert.True(t, hasOpen)
	})

	t.Run("sold sales disappear from open lookups", func(t *testing.T) {
		require.NoError(t, s.MarkSalesSold(ctx, []string{"0xorder1"}))

		found, err := s.GetOpenSaleByOrderHash(ctx, domain.NetworkEthereum, "0xorder1")
		require.NoError(t, err)
		assert.Nil(t, found)

		hasOpen, err := s.HasOpenSales(ctx, card.ID)
		require.NoError(t, err)
		assert.False(t, hasOpen)
	})

	t.Run("delete removes the sale row", func(t *testing.T) {
		other, err := s.CreateSale(ctx, CreateSaleInput{
			OrderHash:    "0xorder2",
			Network:      domain.NetworkEthereum,
			CardID:       card.ID,
			UserID:       creator.ID,
			TokensCount:  1,
			Price:        "100",
			Currency:     "ETH",
			Signature:    "0xsig",
			SaleContract: "0xmarket",
		})
		require.NoError(t, err)

		require.NoError(t, s.DeleteSales(ctx, []int64{other.ID}))

		found, err := s.GetOpenSaleByOrderHash(ctx, domain.NetworkEthereum, "0xorder2")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

// =============================================================================
// Users
// =============================================================================

func TestUserResolution(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	t.Run("resolving the same address twice returns one user", func(t *testing.T) {
		first, err := s.ResolveOrCreateUserByAddress(ctx, "0xAbCd000000000000000000000000000000000001")
		require.NoError(t, err)

		second, err := s.ResolveOrCreateUserByAddress(ctx, "0xabcd000000000000000000000000000000000001")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "0xabcd000000000000000000000000000000000001", second.EthAddress)
	})

	t.Run("batch resolution mixes existing and new addresses", func(t *testing.T) {
		existing, err := s.ResolveOrCreateUserByAddress(ctx, "0xabcd000000000000000000000000000000000002")
		require.NoError(t, err)

		users, err := s.ResolveUsersByAddresses(ctx, []string{
			"0xABCD000000000000000000000000000000000002",
			"0xabcd000000000000000000000000000000000003",
			"0xabcd000000000000000000000000000000000003",
		})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, existing.ID, users["0xabcd000000000000000000000000000000000002"].ID)
		assert.NotEmpty(t, users["0xabcd000000000000000000000000000000000003"].ID)
	})
}

// =============================================================================
// Platform metadata
// =============================================================================

func TestMetadataLookups(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	pg, ok := s.(*pgStore)
	require.True(t, ok)

	user, err := s.ResolveOrCreateUserByAddress(ctx, "0xabcd000000000000000000000000000000000010")
	require.NoError(t, err)

	collectionMeta := schema.CollectionMetadata{
		UserID: user.ID,
		Slug:   "spring-drop",
	}
	require.NoError(t, pg.db.WithContext(ctx).Create(&collectionMeta).Error)

	cardMeta := schema.CardMetadata{
		ContractAddress: "0xabcdef0000000000000000000000000000000006",
		Identifier:      4,
		Name:            "Edition Four",
	}
	require.NoError(t, pg.db.WithContext(ctx).Create(&cardMeta).Error)

	t.Run("collection metadata resolves by user and slug", func(t *testing.T) {
		found, err := s.GetCollectionMetadataByUserAndSlug(ctx, user.ID, "spring-drop")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, collectionMeta.ID, found.ID)

		missing, err := s.GetCollectionMetadataByUserAndSlug(ctx, user.ID, "unknown")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("link attaches metadata to a created collection", func(t *testing.T) {
		collection := seedCollection(t, s, "0xabcdef0000000000000000000000000000000007")
		require.NoError(t, s.LinkCollectionMetadata(ctx, collectionMeta.ID, collection.ID))

		var reloaded schema.CollectionMetadata
		require.NoError(t, pg.db.WithContext(ctx).First(&reloaded, collectionMeta.ID).Error)
		require.NotNil(t, reloaded.CollectionID)
		assert.Equal(t, collection.ID, *reloaded.CollectionID)
	})

	t.Run("card metadata resolves by contract and identifiers", func(t *testing.T) {
		found, err := s.GetCardMetadataByContractAndIdentifiers(ctx,
			"0xABCDEF0000000000000000000000000000000006", []uint64{4, 5})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Edition Four", found[4].Name)
	})
}
