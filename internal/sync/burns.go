package sync

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
)

// SyncBurnedTokens advances the burn listener by one block, removing burned
// editions from their holder's balance and shrinking the card supply
func (e *Engine) SyncBurnedTokens(ctx context.Context, network domain.Network) error {
	return e.runCursorStep(ctx, network, domain.JobBurnedTokenListener, "",
		func(ctx context.Context, blockNumber uint64) (*time.Time, error) {
			client, err := e.client(network)
			if err != nil {
				return nil, err
			}

			rows, err := client.FetchAllBurnedTokens(ctx, blockNumber, e.config.PageLimit)
			if err != nil {
				return nil, err
			}

			var (
				valid     []subgraph.BurnedToken
				blockTime *time.Time
			)
			for _, row := range rows {
				if !row.Valid() {
					logger.WarnCtx(ctx, "skipping malformed burn event",
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

			groups := make(map[string][]subgraph.BurnedToken)
			var holders []string
			for _, row := range valid {
				contract := domain.NormalizeAddress(row.Contract)
				if _, ok := collections[contract]; !ok {
					logger.DebugCtx(ctx, "skipping burn on untracked contract",
						zap.String("contract", contract))
					continue
				}
				identifier, err := subgraph.ParseUint64(row.Identifier)
				if err != nil {
					logger.WarnCtx(ctx, "skipping burn with unparseable identifier",
						zap.String("contract", contract),
						zap.String("identifier", row.Identifier))
					continue
				}
				key := domain.CardTokenID(contract, identifier)
				groups[key] = append(groups[key], row)
				holders = append(holders, row.From)
			}

			users, err := e.store.ResolveUsersByAddresses(ctx, holders)
			if err != nil {
				return nil, err
			}

			err = forEachCardGroup(e, groups, func(row subgraph.BurnedToken) error {
				return e.reconcileBurn(ctx, network, row, collections, users, blockNumber, blockTime)
			})
			if err != nil {
				return nil, err
			}

			return blockTime, nil
		})
}

// reconcileBurn removes burned editions from the holder's balance. When the
// last balance on a card disappears the card is deleted together with its
// sales; otherwise any of the holder's sales that the shrunken balance no
// longer covers are delisted.
func (e *Engine) reconcileBurn(
	ctx context.Context,
	network domain.Network,
	row subgraph.BurnedToken,
	collections map[string]*schema.Collection,
	users map[string]*schema.User,
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

	card, err := e.store.GetCardByCollectionAndIdentifier(ctx, collection.ID, identifier)
	if err != nil {
		return err
	}
	if card == nil {
		logger.WarnCtx(ctx, "skipping burn of unknown card",
			zap.String("contract", contract),
			zap.Uint64("identifier", identifier),
			zap.Uint64("block_number", blockNumber))
		return nil
	}

	holder, ok := users[domain.NormalizeAddress(row.From)]
	if !ok {
		logger.WarnCtx(ctx, "skipping burn with unresolved holder",
			zap.String("token_id", card.TokenID),
			zap.String("holder", row.From))
		return nil
	}

	balance, err := e.store.GetBalance(ctx, card.ID, holder.ID)
	if err != nil {
		return err
	}
	if balance == nil {
		logger.WarnCtx(ctx, "skipping burn from holder without balance",
			zap.String("token_id", card.TokenID),
			zap.String("holder", row.From),
			zap.Uint64("block_number", blockNumber))
		return nil
	}

	if value > balance.TokenAmount {
		logger.WarnCtx(ctx, "burn exceeds holder balance, clamping",
			zap.String("token_id", card.TokenID),
			zap.Uint64("burn_value", value),
			zap.Uint64("balance", balance.TokenAmount))
		value = balance.TokenAmount
	}

	if err := e.store.DecrementBalance(ctx, card.ID, holder.ID, value, true); err != nil {
		return err
	}

	remaining, err := e.store.CountBalances(ctx, card.ID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		if err := e.store.DeleteCardCascade(ctx, card.ID); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "card fully burned and removed",
			zap.String("network", string(network)),
			zap.String("token_id", card.TokenID),
			zap.Uint64("block_number", blockNumber))
	} else {
		if err := e.repairSaleConsistency(ctx, card.ID, holder.ID); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "card burned",
			zap.String("network", string(network)),
			zap.String("token_id", card.TokenID),
			zap.Uint64("value", value),
			zap.Uint64("block_number", blockNumber))
	}

	event := &domain.MarketplaceEvent{
		EventType:   domain.EventTypeCardBurned,
		Network:     network,
		Contract:    contract,
		CardID:      card.TokenID,
		FromAddress: domain.NormalizeAddress(row.From),
		Amount:      value,
		BlockNumber: blockNumber,
	}
	if blockTime != nil {
		event.Timestamp = *blockTime
	}
	e.publishEvent(ctx, event)

	return nil
}
