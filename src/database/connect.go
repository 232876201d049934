package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// dialectorFor picks the gorm driver for the configured backend.
func dialectorFor(config Config) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(config.Driver)) {
	case DriverSQLite, "":
		return sqlite.Open(config.DSN), nil
	case DriverPostgres:
		return postgres.Open(config.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported MOCK_DB_DRIVER %q", config.Driver)
	}
}
