package market

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Empty credentials are prompted for.
	Username      string `envconfig:"CARDEX_USERNAME"`
	Password      string `envconfig:"CARDEX_PASSWORD"`
	TradeLimit    int    `envconfig:"CARDEX_TRADE_LIMIT" default:"5"`
	LoginAttempts int    `envconfig:"CARDEX_LOGIN_ATTEMPTS" default:"3"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
