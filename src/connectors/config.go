package connectors

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL        string        `envconfig:"CARDEX_BASE_URL" default:"http://localhost:3000"`
	RequestTimeout time.Duration `envconfig:"CARDEX_REQUEST_TIMEOUT" default:"10s"`
	// RequestsPerSecond paces outgoing requests; 0 disables pacing.
	RequestsPerSecond float64 `envconfig:"CARDEX_REQUESTS_PER_SECOND" default:"20"`
	RequestBurst      int     `envconfig:"CARDEX_REQUEST_BURST" default:"10"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
