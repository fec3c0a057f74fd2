package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/messaging"
	"github.com/palettehq/marketplace-sync/internal/metadata"
	"github.com/palettehq/marketplace-sync/internal/store"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
)

// EngineConfig holds tuning knobs for block reconciliation
type EngineConfig struct {
	// PageLimit is the indexer page size; 0 uses the client default
	PageLimit int
	// WorkerPoolSize caps concurrent per-card reconciliation within one block
	WorkerPoolSize int
}

// Engine reconciles indexer events into the marketplace database, one block
// at a time per job cursor. All operations are idempotent so a crash between
// reconciling a block and advancing its cursor is repaired by re-running the
// same block.
type Engine struct {
	config    EngineConfig
	store     store.Store
	clients   map[domain.Network]subgraph.Client
	resolver  *metadata.Resolver
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
}

// NewEngine creates a reconciliation engine. clients maps each synced network
// to its indexer endpoint.
func NewEngine(
	config EngineConfig,
	st store.Store,
	clients map[domain.Network]subgraph.Client,
	resolver *metadata.Resolver,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Engine {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 10
	}

	return &Engine{
		config:    config,
		store:     st,
		clients:   clients,
		resolver:  resolver,
		publisher: publisher,
		clock:     clock,
		pool:      pond.NewPool(config.WorkerPoolSize),
	}
}

// client resolves the indexer client for a network
func (e *Engine) client(network domain.Network) (subgraph.Client, error) {
	c, ok := e.clients[network]
	if !ok {
		return nil, fmt.Errorf("no indexer client configured for network %s", network)
	}
	return c, nil
}

// runCursorStep executes one cursor advance for a job:
//
//  1. read the job cursor; a missing cursor is a configuration error and
//     propagates as domain.ErrJobNotFound
//  2. bound the cursor against the indexer head; a cursor past the head means
//     the indexer has not reached that block yet, so the step is a no-op
//  3. run the job's reconcile function for the cursor block; any error leaves
//     the cursor untouched so the same block is retried next tick
//  4. advance the cursor by exactly one block
func (e *Engine) runCursorStep(
	ctx context.Context,
	network domain.Network,
	jobType domain.JobType,
	contractAddress string,
	reconcile func(ctx context.Context, blockNumber uint64) (*time.Time, error),
) error {
	cursor, err := e.store.GetJobCursor(ctx, network, jobType, contractAddress)
	if err != nil {
		return err
	}

	client, err := e.client(network)
	if err != nil {
		return err
	}

	head, err := client.GetHeadBlock(ctx)
	if err != nil {
		return fmt.Errorf("failed to get indexer head block: %w", err)
	}
	if cursor.ProcessingBlockNumber > head {
		logger.DebugCtx(ctx, "cursor ahead of indexer head, waiting",
			zap.String("network", string(network)),
			zap.String("job_type", string(jobType)),
			zap.Uint64("cursor_block", cursor.ProcessingBlockNumber),
			zap.Uint64("head_block", head))
		return nil
	}

	blockTime, err := reconcile(ctx, cursor.ProcessingBlockNumber)
	if err != nil {
		return err
	}

	return e.store.AdvanceJobCursor(ctx, network, jobType, contractAddress, blockTime)
}

// forEachCardGroup fans event groups out to the worker pool, one task per
// card, so events touching the same card stay in order while distinct cards
// reconcile concurrently. The first group error is returned and blocks the
// cursor from advancing.
func forEachCardGroup[T any](e *Engine, groups map[string][]T, apply func(T) error) error {
	if len(groups) == 0 {
		return nil
	}

	taskGroup := e.pool.NewGroup()
	for _, events := range groups {
		events := events
		taskGroup.SubmitErr(func() error {
			for _, event := range events {
				if err := apply(event); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return taskGroup.Wait()
}

// publishEvent sends a reconciliation outcome to the broker. Database state
// is already committed, so a publish failure is logged and does not block the
// cursor.
func (e *Engine) publishEvent(ctx context.Context, event *domain.MarketplaceEvent) {
	if e.publisher == nil {
		return
	}

	event.EventID = ulid.Make().String()
	if event.Timestamp.IsZero() {
		event.Timestamp = e.clock.Now()
	}

	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish marketplace event: %w", err),
			zap.String("event_type", string(event.EventType)),
			zap.String("card_id", event.CardID))
	}
}

// repairSaleConsistency force-delists a maker's open sales on a card whose
// listed quantity is no longer covered by the maker's balance, then refreshes
// the card's has_sale cache
func (e *Engine) repairSaleConsistency(ctx context.Context, cardID int64, userID string) error {
	balance, err := e.store.GetBalance(ctx, cardID, userID)
	if err != nil {
		return err
	}

	var remaining uint64
	if balance != nil {
		remaining = balance.TokenAmount
	}

	sales, err := e.store.GetOpenSalesByMakerAndCard(ctx, cardID, userID)
	if err != nil {
		return err
	}

	var stale []int64
	for _, sale := range sales {
		if sale.TokensCount > remaining {
			stale = append(stale, sale.ID)
			logger.WarnCtx(ctx, "delisting sale no longer covered by maker balance",
				zap.String("order_hash", sale.OrderHash),
				zap.Int64("card_id", cardID),
				zap.Uint64("tokens_count", sale.TokensCount),
				zap.Uint64("maker_balance", remaining))
		}
	}
	if len(stale) > 0 {
		if err := e.store.DeleteSales(ctx, stale); err != nil {
			return err
		}
	}

	hasSale, err := e.store.HasOpenSales(ctx, cardID)
	if err != nil {
		return err
	}

	return e.store.SetCardHasSale(ctx, cardID, hasSale)
}

// parseBlockTime converts the indexer's unix-seconds timestamp string; bad
// timestamps resolve to nil rather than failing the block
func parseBlockTime(timestamp string) *time.Time {
	seconds, err := subgraph.ParseUint64(timestamp)
	if err != nil {
		return nil
	}

	t := time.Unix(int64(seconds), 0).UTC()
	return &t
}
