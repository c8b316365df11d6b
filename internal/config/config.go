// Package config loads calculator settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds startup settings. Only the entry point reads it; the
// calculator core never looks at the environment.
type Config struct {
	Environment     string   `env:"CALC_ENVIRONMENT"      envDefault:"TESTING"`
	LogLevel        string   `env:"CALC_LOG_LEVEL"        envDefault:"info"`
	Plugins         []string `env:"CALC_PLUGINS"          envSeparator:","`
	OTelEnabled     bool     `env:"CALC_OTEL_ENABLED"     envDefault:"false"`
	DiagnosticsAddr string   `env:"CALC_DIAGNOSTICS_ADDR"`
	ServiceName     string   `env:"OTEL_SERVICE_NAME"     envDefault:"calc"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
