package repository

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cardexcli/src/database"
	"cardexcli/src/model"
)

// CardRepository reads cards from the demo store.
type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository() *CardRepository {
	logger.WithField("component", "CardRepository").
		Debug("Creating new CardRepository with MainDB")

	return &CardRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
func (r *CardRepository) WithDB(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// FindByID fetches a single card. Returns (nil, nil) if the card is not found.
func (r *CardRepository) FindByID(
	ctx context.Context,
	id string,
) (*model.Card, error) {

	var card model.Card

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithFields(map[string]interface{}{
				"repo": "CardRepository",
				"op":   "FindByID",
				"id":   id,
			}).Debug("Card not found")

			return nil, nil
		}

		logger.WithFields(map[string]interface{}{
			"repo": "CardRepository",
			"op":   "FindByID",
			"id":   id,
		}).WithError(err).Error("Failed to fetch card by ID")

		return nil, err
	}

	return &card, nil
}
