package repository

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cardexcli/src/database"
	"cardexcli/src/model"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{
		db: database.MainDB,
	}
}

func (r *CollectionRepository) WithDB(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List returns every collection ordered by id.
func (r *CollectionRepository) List(ctx context.Context) ([]model.Collection, error) {
	collections := []model.Collection{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&collections).Error; err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "CollectionRepository",
			"op":   "List",
		}).WithError(err).Error("Failed to list collections")
		return nil, err
	}
	return collections, nil
}
