package controller

import (
	"context"
	"testing"

	"cardexcli/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMarketAPI struct {
	*mockCardFetcher
	open        []model.OpenTrade
	history     []model.CompletedTrade
	collections []model.Collection
	err         error
	limits      []int
}

func (m *mockMarketAPI) GetOpenTrades(_ context.Context, limit int) ([]model.OpenTrade, error) {
	m.limits = append(m.limits, limit)
	return m.open, m.err
}

func (m *mockMarketAPI) GetCompletedTrades(_ context.Context, limit int) ([]model.CompletedTrade, error) {
	m.limits = append(m.limits, limit)
	return m.history, m.err
}

func (m *mockMarketAPI) GetCollections(_ context.Context) ([]model.Collection, error) {
	return m.collections, m.err
}

func TestMarketController_OpenTrades(t *testing.T) {
	api := &mockMarketAPI{
		mockCardFetcher: newFetcher(),
		open:            []model.OpenTrade{{ID: "t-1", CardID: strPtr("card-1"), WantCardID: nil, Price: 4500, Username: "DriftKing"}},
	}
	ctrl := NewMarketController(api)

	views, err := ctrl.OpenTrades(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Test Car", views[0].Vehicle)
	assert.Equal(t, "FACTORY", views[0].Grade)
	assert.Equal(t, model.TradeForPrice, views[0].Type())
	assert.Nil(t, views[0].WantVehicle)
	assert.Equal(t, []int{1}, api.limits)
}

func TestMarketController_CompletedTradesWarnings(t *testing.T) {
	api := &mockMarketAPI{
		mockCardFetcher: newFetcher(),
		history: []model.CompletedTrade{
			{ID: "h-1", SellerCardID: strPtr("card-1"), ExecutedDate: "2024-01-15T10:30:00Z"},
			{ID: "h-2", SellerCardID: strPtr("card-2"), BuyerCardID: strPtr("card-1"), ExecutedDate: "invalid-date"},
		},
	}
	ctrl := NewMarketController(api)

	views, warnings, err := ctrl.CompletedTrades(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "h-2")

	assert.Equal(t, model.TradeForPrice, views[0].Type())
	assert.Equal(t, model.TradeForCard, views[1].Type())
}

func TestMarketController_FetchErrorPropagates(t *testing.T) {
	api := &mockMarketAPI{mockCardFetcher: newFetcher(), err: assert.AnError}
	ctrl := NewMarketController(api)

	_, err := ctrl.OpenTrades(context.Background(), 5)
	assert.ErrorIs(t, err, assert.AnError)

	_, _, err = ctrl.CompletedTrades(context.Background(), 5)
	assert.ErrorIs(t, err, assert.AnError)

	_, err = ctrl.Collections(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMarketController_Collections(t *testing.T) {
	api := &mockMarketAPI{
		mockCardFetcher: newFetcher(),
		collections: []model.Collection{
			{ID: "col-1", Name: "JDM Legends", CardCount: 25, Price: 1000},
			{ID: "col-2"},
		},
	}
	ctrl := NewMarketController(api)

	views, err := ctrl.Collections(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1000, views[0].PackPrice)
	assert.Equal(t, "Unknown Collection", views[1].Name)
}
