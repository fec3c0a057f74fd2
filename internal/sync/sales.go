package sync

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
)

// settledSale pairs an order-fill event with the open sale it settles
type settledSale struct {
	match subgraph.SellMatch
	sale  *schema.Sale
}

// SyncSales advances one sale contract's listener by one block, settling
// every order filled in that block: the sale flips to sold and the purchased
// editions move from maker to taker
func (e *Engine) SyncSales(ctx context.Context, network domain.Network, saleContract string) error {
	return e.runCursorStep(ctx, network, domain.JobSaleListener, saleContract,
		func(ctx context.Context, blockNumber uint64) (*time.Time, error) {
			client, err := e.client(network)
			if err != nil {
				return nil, err
			}

			rows, err := client.FetchAllSellMatches(ctx, saleContract, blockNumber, e.config.PageLimit)
			if err != nil {
				return nil, err
			}

			var (
				settled   []settledSale
				hashes    []string
				takers    []string
				blockTime *time.Time
			)
			for _, row := range rows {
				if !row.Valid() {
					logger.WarnCtx(ctx, "skipping malformed order-fill event",
						zap.String("network", string(network)),
						zap.String("order_hash", row.OrderHash),
						zap.Uint64("block_number", blockNumber))
					continue
				}
				if blockTime == nil {
					blockTime = parseBlockTime(row.Timestamp)
				}

				sale, err := e.store.GetOpenSaleByOrderHash(ctx, network, row.OrderHash)
				if err != nil {
					return nil, err
				}
				if sale == nil {
					// Fills of orders the marketplace never listed, or of
					// sales already delisted by reconciliation
					logger.WarnCtx(ctx, "skipping fill of unknown or closed order",
						zap.String("order_hash", row.OrderHash),
						zap.Uint64("block_number", blockNumber))
					continue
				}

				settled = append(settled, settledSale{match: row, sale: sale})
				hashes = append(hashes, row.OrderHash)
				takers = append(takers, row.Buyer)
			}
			if len(settled) == 0 {
				return blockTime, nil
			}

			// Flip every filled order to sold before touching balances, so a
			// crash mid-block can at worst leave sold orders whose editions
			// move on replay, never an open order that already paid out
			if err := e.store.MarkSalesSold(ctx, hashes); err != nil {
				return nil, err
			}

			users, err := e.store.ResolveUsersByAddresses(ctx, takers)
			if err != nil {
				return nil, err
			}

			err = forEachCardGroup(e, groupSettledByCard(settled), func(s settledSale) error {
				return e.settleSale(ctx, network, s, users, blockNumber, blockTime)
			})
			if err != nil {
				return nil, err
			}

			return blockTime, nil
		})
}

func groupSettledByCard(settled []settledSale) map[string][]settledSale {
	groups := make(map[string][]settledSale)
	for _, s := range settled {
		key := strconv.FormatInt(s.sale.CardID, 10)
		groups[key] = append(groups[key], s)
	}
	return groups
}

// settleSale moves the filled quantity from maker to taker and refreshes the
// maker's remaining sales on the card
func (e *Engine) settleSale(
	ctx context.Context,
	network domain.Network,
	s settledSale,
	users map[string]*schema.User,
	blockNumber uint64,
	blockTime *time.Time,
) error {
	sale := s.sale

	amount, err := subgraph.ParseUint64(s.match.TokensCount)
	if err != nil {
		return nil
	}
	if amount > sale.TokensCount {
		logger.WarnCtx(ctx, "fill exceeds listed quantity, clamping",
			zap.String("order_hash", sale.OrderHash),
			zap.Uint64("filled", amount),
			zap.Uint64("listed", sale.TokensCount))
		amount = sale.TokensCount
	}

	taker, ok := users[domain.NormalizeAddress(s.match.Buyer)]
	if !ok {
		logger.WarnCtx(ctx, "skipping settlement with unresolved taker",
			zap.String("order_hash", sale.OrderHash),
			zap.String("taker", s.match.Buyer))
		return nil
	}

	balance, err := e.store.GetBalance(ctx, sale.CardID, sale.UserID)
	if err != nil {
		return err
	}
	if balance == nil {
		// The maker no longer holds the card; the order stays sold but there
		// is nothing to move
		logger.WarnCtx(ctx, "skipping settlement, maker holds no balance",
			zap.String("order_hash", sale.OrderHash),
			zap.Int64("card_id", sale.CardID),
			zap.Uint64("block_number", blockNumber))
		return nil
	}
	if amount > balance.TokenAmount {
		logger.WarnCtx(ctx, "settlement exceeds maker balance, clamping",
			zap.String("order_hash", sale.OrderHash),
			zap.Uint64("filled", amount),
			zap.Uint64("maker_balance", balance.TokenAmount))
		amount = balance.TokenAmount
	}

	if err := e.store.MoveBalance(ctx, sale.CardID, sale.UserID, taker.ID, s.match.Buyer, amount); err != nil {
		return err
	}

	if err := e.repairSaleConsistency(ctx, sale.CardID, sale.UserID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "sale settled",
		zap.String("network", string(network)),
		zap.String("order_hash", sale.OrderHash),
		zap.Int64("card_id", sale.CardID),
		zap.Uint64("amount", amount),
		zap.Uint64("block_number", blockNumber))

	event := &domain.MarketplaceEvent{
		EventType:   domain.EventTypeSaleSettled,
		Network:     network,
		Contract:    sale.SaleContract,
		OrderHash:   sale.OrderHash,
		FromAddress: domain.NormalizeAddress(s.match.Seller),
		ToAddress:   domain.NormalizeAddress(s.match.Buyer),
		Amount:      amount,
		BlockNumber: blockNumber,
	}
	if blockTime != nil {
		event.Timestamp = *blockTime
	}
	e.publishEvent(ctx, event)

	return nil
}
