package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort     uint16        `envconfig:"MOVEFITRX_HTTP_SERVER_PORT" default:"8080" required:"true"`
	PollInterval time.Duration `envconfig:"MOVEFITRX_VIEW_POLL_INTERVAL" default:"1s"`
	PaymentDelay time.Duration `envconfig:"MOVEFITRX_PAYMENT_DELAY" default:"2s"`
	SeedDemoData bool          `envconfig:"MOVEFITRX_SEED_DEMO_DATA" default:"true"`
	StoreDriver  string        `envconfig:"MOVEFITRX_STORE_DRIVER" default:"memory"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
