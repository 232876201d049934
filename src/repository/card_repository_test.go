package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepositoryFindByID(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&CardRepository{}).WithDB(mockDB)

	query := regexp.QuoteMeta(`SELECT * FROM "cards" WHERE id = $1 ORDER BY "cards"."id" LIMIT $2`)
	createdAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "grade", "value", "created_at"}).
			AddRow("card-1", "1999 Nissan Skyline GT-R R34", "NISMO", 15000, createdAt)
		mock.ExpectQuery(query).WithArgs("card-1", 1).WillReturnRows(rows)

		card, err := repo.FindByID(context.Background(), "card-1")
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "1999 Nissan Skyline GT-R R34", card.Name)
		assert.Equal(t, "NISMO", card.Grade)
		require.NotNil(t, card.Value)
		assert.Equal(t, 15000, *card.Value)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		card, err := repo.FindByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, card)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("card-1", 1).WillReturnError(assert.AnError)

		card, err := repo.FindByID(context.Background(), "card-1")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, card)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}
