package database

import (
	"testing"

	"cardexcli/src/database/migrations"
	"cardexcli/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInitMainDB_SeedsDemoData(t *testing.T) {
	err := InitMainDB(Config{
		Driver:       DriverSQLite,
		DSN:          "file:seed_test?mode=memory&cache=shared",
		GormLogLevel: 1,
		Seed:         true,
	})
	require.NoError(t, err)
	require.NotNil(t, MainDB)

	counts := func() map[string]int64 {
		out := map[string]int64{}
		for name, m := range map[string]interface{}{
			"users":            &model.User{},
			"cards":            &model.Card{},
			"collections":      &model.Collection{},
			"open_trades":      &model.OpenTrade{},
			"completed_trades": &model.CompletedTrade{},
		} {
			var n int64
			require.NoError(t, MainDB.Model(m).Count(&n).Error)
			out[name] = n
		}
		return out
	}

	first := counts()
	assert.Equal(t, int64(1), first["users"])
	assert.Equal(t, int64(5), first["collections"])
	assert.Equal(t, int64(5), first["open_trades"])
	assert.Equal(t, int64(5), first["completed_trades"])
	assert.Equal(t, int64(14), first["cards"])

	// data migrations are recorded and never applied twice
	require.NoError(t, migrations.Run(MainDB))
	assert.Equal(t, first, counts())

	var user model.User
	require.NoError(t, MainDB.Where("username = ?", migrations.DemoUsername).First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(migrations.DemoPassword)))
}

func TestInitMainDB_UnknownDriver(t *testing.T) {
	err := InitMainDB(Config{Driver: "oracle"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
