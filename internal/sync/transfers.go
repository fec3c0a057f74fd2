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

// SyncTransferTokens advances the transfer listener by one block, moving
// editions between holders. Mints and burns are indexed by their own
// listeners and never appear in this stream.
func (e *Engine) SyncTransferTokens(ctx context.Context, network domain.Network) error {
	return e.runCursorStep(ctx, network, domain.JobTransferTokenListener, "",
		func(ctx context.Context, blockNumber uint64) (*time.Time, error) {
			client, err := e.client(network)
			if err != nil {
				return nil, err
			}

			rows, err := client.FetchAllTransferTokens(ctx, blockNumber, e.config.PageLimit)
			if err != nil {
				return nil, err
			}

			var (
				valid     []subgraph.TransferToken
				blockTime *time.Time
			)
			for _, row := range rows {
				if !row.Valid() {
					logger.WarnCtx(ctx, "skipping malformed transfer event",
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

			groups := make(map[string][]subgraph.TransferToken)
			var addresses []string
			for _, row := range valid {
				contract := domain.NormalizeAddress(row.Contract)
				if _, ok := collections[contract]; !ok {
					logger.DebugCtx(ctx, "skipping transfer on untracked contract",
						zap.String("contract", contract))
					continue
				}
				identifier, err := subgraph.ParseUint64(row.Identifier)
				if err != nil {
					logger.WarnCtx(ctx, "skipping transfer with unparseable identifier",
						zap.String("contract", contract),
						zap.String("identifier", row.Identifier))
					continue
				}
				key := domain.CardTokenID(contract, identifier)
				groups[key] = append(groups[key], row)
				addresses = append(addresses, row.From, row.To)
			}

			users, err := e.store.ResolveUsersByAddresses(ctx, addresses)
			if err != nil {
				return nil, err
			}

			err = forEachCardGroup(e, groups, func(row subgraph.TransferToken) error {
				return e.reconcileTransfer(ctx, network, row, collections, users, blockNumber, blockTime)
			})
			if err != nil {
				return nil, err
			}

			return blockTime, nil
		})
}

// reconcileTransfer moves editions from sender to receiver, then delists any
// of the sender's sales the remaining balance no longer covers
func (e *Engine) reconcileTransfer(
	ctx context.Context,
	network domain.Network,
	row subgraph.TransferToken,
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
		logger.WarnCtx(ctx, "skipping transfer of unknown card",
			zap.String("contract", contract),
			zap.Uint64("identifier", identifier),
			zap.Uint64("block_number", blockNumber))
		return nil
	}

	sender, senderOK := users[domain.NormalizeAddress(row.From)]
	receiver, receiverOK := users[domain.NormalizeAddress(row.To)]
	if !senderOK || !receiverOK {
		logger.WarnCtx(ctx, "skipping transfer with unresolved parties",
			zap.String("token_id", card.TokenID),
			zap.String("from", row.From),
			zap.String("to", row.To))
		return nil
	}

	balance, err := e.store.GetBalance(ctx, card.ID, sender.ID)
	if err != nil {
		return err
	}
	if balance == nil {
		logger.WarnCtx(ctx, "skipping transfer from sender without balance",
			zap.String("token_id", card.TokenID),
			zap.String("sender", row.From),
			zap.Uint64("block_number", blockNumber))
		return nil
	}

	if value > balance.TokenAmount {
		logger.WarnCtx(ctx, "transfer exceeds sender balance, clamping",
			zap.String("token_id", card.TokenID),
			zap.Uint64("transfer_value", value),
			zap.Uint64("balance", balance.TokenAmount))
		value = balance.TokenAmount
	}

	if err := e.store.MoveBalance(ctx, card.ID, sender.ID, receiver.ID, row.To, value); err != nil {
		return err
	}

	if err := e.repairSaleConsistency(ctx, card.ID, sender.ID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "card transferred",
		zap.String("network", string(network)),
		zap.String("token_id", card.TokenID),
		zap.Uint64("value", value),
		zap.Uint64("block_number", blockNumber))

	event := &domain.MarketplaceEvent{
		EventType:   domain.EventTypeCardTransferred,
		Network:     network,
		Contract:    contract,
		CardID:      card.TokenID,
		FromAddress: domain.NormalizeAddress(row.From),
		ToAddress:   domain.NormalizeAddress(row.To),
		Amount:      value,
		BlockNumber: blockNumber,
	}
	if blockTime != nil {
		event.Timestamp = *blockTime
	}
	e.publishEvent(ctx, event)

	return nil
}
