package sync

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/store"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
)

// SyncCreatedContracts advances the contract-creation listener by one block,
// registering every collection contract deployed in that block
func (e *Engine) SyncCreatedContracts(ctx context.Context, network domain.Network) error {
	return e.runCursorStep(ctx, network, domain.JobCreatedContractListener, "",
		func(ctx context.Context, blockNumber uint64) (*time.Time, error) {
			client, err := e.client(network)
			if err != nil {
				return nil, err
			}

			rows, err := client.FetchAllCreatedCollections(ctx, blockNumber, e.config.PageLimit)
			if err != nil {
				return nil, err
			}

			var blockTime *time.Time
			for _, row := range rows {
				if !row.Valid() {
					logger.WarnCtx(ctx, "skipping malformed contract-creation event",
						zap.String("network", string(network)),
						zap.String("contract", row.Contract),
						zap.Uint64("block_number", blockNumber))
					continue
				}
				if blockTime == nil {
					blockTime = parseBlockTime(row.Timestamp)
				}

				if err := e.reconcileCreatedCollection(ctx, network, row, blockNumber, blockTime); err != nil {
					return nil, err
				}
			}

			return blockTime, nil
		})
}

// reconcileCreatedCollection registers one deployed contract as a collection.
// Re-seeing a tracked contract is a no-op so block replays stay idempotent.
func (e *Engine) reconcileCreatedCollection(ctx context.Context, network domain.Network, row subgraph.CreatedCollection, blockNumber uint64, blockTime *time.Time) error {
	contract := domain.NormalizeAddress(row.Contract)

	existing, err := e.store.GetCollectionByContract(ctx, network, contract)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "collection already tracked, skipping",
			zap.String("contract", contract))
		return nil
	}

	// Collections are only auto-created with a URI that resolves to metadata
	// registered before deployment, or with no URI at all. A contract whose
	// URI points anywhere else is someone else's deployment and is skipped.
	var meta *schema.CollectionMetadata
	if row.URI != nil && *row.URI != "" {
		ref := e.resolver.ResolveCollectionURI(*row.URI)
		if ref == nil {
			logger.WarnCtx(ctx, "skipping contract with unrecognized metadata URI",
				zap.String("contract", contract),
				zap.String("uri", *row.URI),
				zap.Uint64("block_number", blockNumber))
			return nil
		}
		meta, err = e.store.GetCollectionMetadataByUserAndSlug(ctx, ref.UserID, ref.Slug)
		if err != nil {
			return err
		}
		if meta == nil {
			logger.WarnCtx(ctx, "skipping contract, URI references unregistered collection metadata",
				zap.String("contract", contract),
				zap.String("user_id", ref.UserID),
				zap.String("slug", ref.Slug))
			return nil
		}
	}

	creator, err := e.store.ResolveOrCreateUserByAddress(ctx, row.Creator)
	if err != nil {
		return err
	}

	input := store.CreateCollectionInput{
		Network:    network,
		ContractID: contract,
		UserID:     creator.ID,
		Name:       row.Name,
		Symbol:     row.Symbol,
		URI:        row.URI,
	}

	var metadataID *int64
	if meta != nil {
		input.Symbol = firstNonNil(meta.Symbol, input.Symbol)
		input.Description = meta.Description
		input.Logo = meta.Logo
		input.Links = meta.Links
		metadataID = &meta.ID
	}

	collection, err := e.store.CreateCollection(ctx, input)
	if err != nil {
		return err
	}

	if metadataID != nil {
		if err := e.store.LinkCollectionMetadata(ctx, *metadataID, collection.ID); err != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "collection created",
		zap.String("network", string(network)),
		zap.String("contract", contract),
		zap.Uint64("block_number", blockNumber))

	event := &domain.MarketplaceEvent{
		EventType:   domain.EventTypeCollectionCreated,
		Network:     network,
		Contract:    contract,
		FromAddress: domain.NormalizeAddress(row.Creator),
		BlockNumber: blockNumber,
	}
	if blockTime != nil {
		event.Timestamp = *blockTime
	}
	e.publishEvent(ctx, event)

	return nil
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
