package database

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Driver       string `envconfig:"MOCK_DB_DRIVER" default:"sqlite"` // "sqlite" or "postgres"
	DSN          string `envconfig:"MOCK_DB_DSN" default:"file::memory:?cache=shared"`
	GormLogLevel int    `envconfig:"GORM_LOG_LEVEL" default:"1"`
	Seed         bool   `envconfig:"MOCK_DB_SEED" default:"true"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
