package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepositoryList(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&CollectionRepository{}).WithDB(mockDB)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "card_count", "price"}).
		AddRow("col-001", "JDM Legends", "Iconic Japanese sports cars", 25, 1000).
		AddRow("col-002", "Modern Marvels", "The latest high-performance vehicles", 30, 1500)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "collections" ORDER BY id ASC`)).WillReturnRows(rows)

	collections, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "JDM Legends", collections[0].Name)
	assert.Equal(t, 25, collections[0].CardCount)
	assert.Equal(t, 1500, collections[1].Price)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestUserRepositoryGetUserByUserName(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&GormUserRepository{}).WithDB(mockDB)

	query := regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)

	mock.ExpectQuery(query).WithArgs("demo", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "currency"}).
			AddRow("user-demo", "demo", "$2a$10$hash", 25000))

	user, err := repo.GetUserByUserName(context.Background(), "demo")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-demo", user.ID)
	assert.Equal(t, 25000, user.Currency)

	mock.ExpectQuery(query).WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err = repo.GetUserByUserName(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}
