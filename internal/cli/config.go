package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment rather than flags so it applies to
// every subcommand uniformly.
type Config struct {
	NoColor bool `env:"GOF_NO_COLOR"`
	JSON    bool `env:"GOF_JSON"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
