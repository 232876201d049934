package repository

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cardexcli/src/database"
	"cardexcli/src/model"
)

const (
	SortDateDesc = "date_desc"
	SortDateAsc  = "date_asc"

	defaultTradeLimit = 20
)

// TradeListOptions pages through open listings or trade history.
type TradeListOptions struct {
	Limit  int
	Offset int
	SortBy string
}

func (o TradeListOptions) limit() int {
	if o.Limit <= 0 {
		return defaultTradeLimit
	}
	return o.Limit
}

func (o TradeListOptions) offset() int {
	if o.Offset < 0 {
		return 0
	}
	return o.Offset
}

func dateOrder(sortBy, column string) string {
	if sortBy == SortDateAsc {
		return column + " ASC, id ASC"
	}
	return column + " DESC, id DESC"
}

// TradeRepository reads open listings and executed trades.
type TradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository() *TradeRepository {
	logger.WithField("component", "TradeRepository").
		Debug("Creating new TradeRepository with MainDB")

	return &TradeRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
func (r *TradeRepository) WithDB(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// ListOpen returns open listings, newest first unless SortBy is date_asc.
func (r *TradeRepository) ListOpen(
	ctx context.Context,
	options TradeListOptions,
) ([]model.OpenTrade, error) {

	fields := map[string]interface{}{
		"repo":   "TradeRepository",
		"op":     "ListOpen",
		"limit":  options.limit(),
		"offset": options.offset(),
		"sortBy": options.SortBy,
	}

	trades := []model.OpenTrade{}
	err := r.db.WithContext(ctx).
		Order(dateOrder(options.SortBy, "created_at")).
		Limit(options.limit()).
		Offset(options.offset()).
		Find(&trades).Error

	if err != nil {
		logger.WithFields(fields).WithError(err).Error("Failed to list open trades")
		return nil, err
	}

	logger.WithFields(fields).WithField("rows_return", len(trades)).Debug("Open trades fetched")
	return trades, nil
}

// ListCompleted returns executed trades, most recent first.
func (r *TradeRepository) ListCompleted(
	ctx context.Context,
	options TradeListOptions,
) ([]model.CompletedTrade, error) {

	fields := map[string]interface{}{
		"repo":   "TradeRepository",
		"op":     "ListCompleted",
		"limit":  options.limit(),
		"offset": options.offset(),
	}

	trades := []model.CompletedTrade{}
	err := r.db.WithContext(ctx).
		Order(dateOrder(options.SortBy, "executed_date")).
		Limit(options.limit()).
		Offset(options.offset()).
		Find(&trades).Error

	if err != nil {
		logger.WithFields(fields).WithError(err).Error("Failed to list completed trades")
		return nil, err
	}

	logger.WithFields(fields).WithField("rows_return", len(trades)).Debug("Completed trades fetched")
	return trades, nil
}
