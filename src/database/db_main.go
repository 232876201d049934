package database

import (
	"fmt"
	"time"

	"cardexcli/src/database/migrations"
	"cardexcli/src/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MainDB is the demo API's store. It is set by InitMainDB.
var MainDB *gorm.DB

// InitMainDB opens the demo store, migrates the schema and seeds the demo
// data once. It should be called once at mockserver startup.
func InitMainDB(config Config) error {
	dialector, err := dialectorFor(config)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector,
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", config.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	if config.Driver == DriverPostgres {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	} else {
		// every connection to a shared in-memory sqlite sees the same db,
		// but it vanishes once the last one closes
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	logrus.WithField("driver", config.Driver).Info("[database] MainDB connection established")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Card{},
		&model.Collection{},
		&model.OpenTrade{},
		&model.CompletedTrade{},
		&migrations.DataMigration{},
	); err != nil {
		return fmt.Errorf("failed to run migrations on MainDB: %w", err)
	}

	if config.Seed {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run data migrations on MainDB: %w", err)
		}
	}

	MainDB = db
	logrus.Info("[database] MainDB migrations completed")

	return nil
}
