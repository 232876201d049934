package controller

import (
	"context"

	"cardexcli/src/mapper"
	"cardexcli/src/model"

	logger "github.com/sirupsen/logrus"
)

// MarketAPI is the part of the CarDex connector the market commands use.
type MarketAPI interface {
	CardFetcher
	GetOpenTrades(ctx context.Context, limit int) ([]model.OpenTrade, error)
	GetCompletedTrades(ctx context.Context, limit int) ([]model.CompletedTrade, error)
	GetCollections(ctx context.Context) ([]model.Collection, error)
}

// MarketController runs fetch, enrich and transform for each market command.
// Nothing is kept between calls.
type MarketController struct {
	api      MarketAPI
	enricher *TradeEnricher
	log      *logger.Entry
}

func NewMarketController(api MarketAPI) *MarketController {
	return &MarketController{
		api:      api,
		enricher: NewTradeEnricher(api),
		log:      logger.WithField("controller", "market"),
	}
}

func (m *MarketController) OpenTrades(ctx context.Context, limit int) ([]model.OpenTradeView, error) {
	trades, err := m.api.GetOpenTrades(ctx, limit)
	if err != nil {
		return nil, err
	}

	enriched, err := m.enricher.EnrichOpenTrades(ctx, trades)
	if err != nil {
		return nil, err
	}

	views := make([]model.OpenTradeView, 0, len(enriched))
	for _, trade := range enriched {
		views = append(views, mapper.TransformOpenTrade(trade))
	}

	m.log.WithField("count", len(views)).Debug("Open trades loaded")
	return views, nil
}

// CompletedTrades returns the views plus the non-fatal warnings raised while
// transforming them (unparseable execution dates).
func (m *MarketController) CompletedTrades(ctx context.Context, limit int) ([]model.CompletedTradeView, []error, error) {
	trades, err := m.api.GetCompletedTrades(ctx, limit)
	if err != nil {
		return nil, nil, err
	}

	enriched, err := m.enricher.EnrichCompletedTrades(ctx, trades)
	if err != nil {
		return nil, nil, err
	}

	views := make([]model.CompletedTradeView, 0, len(enriched))
	var warnings []error
	for _, trade := range enriched {
		view, warn := mapper.TransformCompletedTrade(trade)
		if warn != nil {
			warnings = append(warnings, warn)
		}
		views = append(views, view)
	}

	m.log.WithFields(map[string]any{
		"count":    len(views),
		"warnings": len(warnings),
	}).Debug("Completed trades loaded")
	return views, warnings, nil
}

// Collections serves both the shop (packs) and the collection list.
func (m *MarketController) Collections(ctx context.Context) ([]model.CollectionView, error) {
	collections, err := m.api.GetCollections(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.CollectionView, 0, len(collections))
	for _, col := range collections {
		views = append(views, mapper.TransformCollection(col))
	}
	return views, nil
}
