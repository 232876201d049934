package controller

import (
	"context"
	"fmt"
	"strings"

	"cardexcli/src/model"

	logger "github.com/sirupsen/logrus"
)

// CardFetcher resolves a card id. A missing card is (nil, nil).
type CardFetcher interface {
	GetCard(ctx context.Context, cardID string) (*model.Card, error)
}

// TradeEnricher attaches card details to trade records. Lookups run one by
// one in list order; repeated ids are fetched again for every occurrence.
type TradeEnricher struct {
	cards CardFetcher
}

func NewTradeEnricher(cards CardFetcher) *TradeEnricher {
	return &TradeEnricher{cards: cards}
}

// resolve returns the card behind id, or nil when id is absent or the card
// does not exist. Only genuine failures come back as errors.
func (e *TradeEnricher) resolve(ctx context.Context, tradeID, field string, id *string) (*model.Card, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}

	card, err := e.cards.GetCard(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("resolve %s %q of trade %s: %w", field, *id, tradeID, err)
	}
	if card == nil {
		logger.WithFields(map[string]any{
			"tradeId": tradeID,
			"field":   field,
			"cardId":  *id,
		}).Debug("Referenced card not found, leaving details empty")
	}
	return card, nil
}

// EnrichOpenTrades resolves cardId and wantCardId of every listing.
func (e *TradeEnricher) EnrichOpenTrades(ctx context.Context, trades []model.OpenTrade) ([]model.EnrichedOpenTrade, error) {
	enriched := make([]model.EnrichedOpenTrade, 0, len(trades))

	for _, trade := range trades {
		card, err := e.resolve(ctx, trade.ID, "cardId", trade.CardID)
		if err != nil {
			return nil, err
		}
		wantCard, err := e.resolve(ctx, trade.ID, "wantCardId", trade.WantCardID)
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, model.EnrichedOpenTrade{
			OpenTrade:       trade,
			CardDetails:     card,
			WantCardDetails: wantCard,
		})
	}

	return enriched, nil
}

// EnrichCompletedTrades resolves sellerCardId and buyerCardId of every trade.
func (e *TradeEnricher) EnrichCompletedTrades(ctx context.Context, trades []model.CompletedTrade) ([]model.EnrichedCompletedTrade, error) {
	enriched := make([]model.EnrichedCompletedTrade, 0, len(trades))

	for _, trade := range trades {
		sellerCard, err := e.resolve(ctx, trade.ID, "sellerCardId", trade.SellerCardID)
		if err != nil {
			return nil, err
		}
		buyerCard, err := e.resolve(ctx, trade.ID, "buyerCardId", trade.BuyerCardID)
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, model.EnrichedCompletedTrade{
			CompletedTrade:    trade,
			SellerCardDetails: sellerCard,
			BuyerCardDetails:  buyerCard,
		})
	}

	return enriched, nil
}
