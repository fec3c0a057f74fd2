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

// SyncCreatedTokens advances the mint listener by one block, creating a card
// with its initial creator balance for every mint in that block
func (e *Engine) SyncCreatedTokens(ctx context.Context, network domain.Network) error {
	return e.runCursorStep(ctx, network, domain.JobCreatedTokenListener, "",
		func(ctx context.Context, blockNumber uint64) (*time.Time, error) {
			client, err := e.client(network)
			if err != nil {
				return nil, err
			}

			rows, err := client.FetchAllCreatedTokens(ctx, blockNumber, e.config.PageLimit)
			if err != nil {
				return nil, err
			}

			var (
				valid     []subgraph.CreatedToken
				blockTime *time.Time
			)
			for _, row := range rows {
				if !row.Valid() {
					logger.WarnCtx(ctx, "skipping malformed mint event",
						zap.String("network", string(network)),
						zap.String("contract", row.Contract),
						zap.String("identifier", row.Identifier),
						zap.Uint64("block_number", blockNumber))
					continue
				}
				if blockTime == nil {
					blockTime = parseBlockTime(row.Timestamp)
				}
				valid = append(valid, row)
			}
			if len(valid) == 0 {
				return blockTime, nil
			}

			var contracts []string
			for _, row := range valid {
				contracts = append(contracts, row.Contract)
			}

			collections, err := e.store.GetCollectionsByContracts(ctx, network, contracts)
			if err != nil {
				return nil, err
			}

			// Mints on contracts the marketplace never registered belong to
			// someone else's deployment and are dropped, as are tokens whose
			// metadata lives off the platform domain
			groups := make(map[string][]subgraph.CreatedToken)
			identifiersByContract := make(map[string][]uint64)
			var creators []string
			for _, row := range valid {
				contract := domain.NormalizeAddress(row.Contract)
				if _, ok := collections[contract]; !ok {
					logger.DebugCtx(ctx, "skipping mint on untracked contract",
						zap.String("contract", contract))
					continue
				}

				if !e.resolver.IsPlatformURI(row.URI) {
					logger.DebugCtx(ctx, "skipping mint with off-platform token URI",
						zap.String("contract", contract),
						zap.String("identifier", row.Identifier),
						zap.String("uri", row.URI))
					continue
				}

				identifier, err := subgraph.ParseUint64(row.Identifier)
				if err != nil {
					logger.WarnCtx(ctx, "skipping mint with unparseable identifier",
						zap.String("contract", contract),
						zap.String("identifier", row.Identifier))
					continue
				}

				key := domain.CardTokenID(contract, identifier)
				groups[key] = append(groups[key], row)
				identifiersByContract[contract] = append(identifiersByContract[contract], identifier)
				creators = append(creators, row.Creator)
			}

			// Only creators of tracked mints become marketplace users
			users, err := e.store.ResolveUsersByAddresses(ctx, creators)
			if err != nil {
				return nil, err
			}

			cardMetadata := make(map[string]map[uint64]*schema.CardMetadata)
			for contract, identifiers := range identifiersByContract {
				meta, err := e.store.GetCardMetadataByContractAndIdentifiers(ctx, contract, identifiers)
				if err != nil {
					return nil, err
				}
				cardMetadata[contract] = meta
			}

			err = forEachCardGroup(e, groups, func(row subgraph.CreatedToken) error {
				return e.reconcileMint(ctx, network, row, collections, users, cardMetadata, blockNumber, blockTime)
			})
			if err != nil {
				return nil, err
			}

			return blockTime, nil
		})
}

// reconcileMint creates one card with its creator balance. Tokens minted
// without pre-stored metadata are dropped; re-seeing an existing card is a
// no-op.
func (e *Engine) reconcileMint(
	ctx context.Context,
	network domain.Network,
	row subgraph.CreatedToken,
	collections map[string]*schema.Collection,
	users map[string]*schema.User,
	cardMetadata map[string]map[uint64]*schema.CardMetadata,
	blockNumber uint64,
	blockTime *time.Time,
) error {
	contract := domain.NormalizeAddress(row.Contract)
	collection := collections[contract]

	identifier, err := subgraph.ParseUint64(row.Identifier)
	if err != nil {
		return nil
	}
	value, err := subgraph.ParseUint64(row.Value)
	if err != nil {
		return nil
	}

	existing, err := e.store.GetCardByCollectionAndIdentifier(ctx, collection.ID, identifier)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "card already minted, skipping",
			zap.String("token_id", existing.TokenID))
		return nil
	}

	meta := cardMetadata[contract][identifier]
	if meta == nil {
		logger.WarnCtx(ctx, "skipping mint without pre-stored token metadata",
			zap.String("contract", contract),
			zap.Uint64("identifier", identifier),
			zap.Uint64("block_number", blockNumber))
		return nil
	}

	creator, ok := users[domain.NormalizeAddress(row.Creator)]
	if !ok {
		logger.WarnCtx(ctx, "skipping mint with unresolved creator",
			zap.String("contract", contract),
			zap.String("creator", row.Creator))
		return nil
	}

	card, err := e.store.CreateCardMint(ctx, store.CreateCardMintInput{
		TokenID:      domain.CardTokenID(contract, identifier),
		Identifier:   identifier,
		CollectionID: collection.ID,
		CreatorID:    creator.ID,
		CreatorAddr:  row.Creator,
		Value:        value,
		Name:         meta.Name,
		Description:  meta.Description,
		Image:        meta.Image,
		Animation:    meta.Animation,
		Attributes:   meta.Attributes,
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "card minted",
		zap.String("network", string(network)),
		zap.String("token_id", card.TokenID),
		zap.Uint64("value", value),
		zap.Uint64("block_number", blockNumber))

	event := &domain.MarketplaceEvent{
		EventType:   domain.EventTypeCardMinted,
		Network:     network,
		Contract:    contract,
		CardID:      card.TokenID,
		ToAddress:   domain.NormalizeAddress(row.Creator),
		Amount:      value,
		BlockNumber: blockNumber,
	}
	if blockTime != nil {
		event.Timestamp = *blockTime
	}
	e.publishEvent(ctx, event)

	return nil
}
