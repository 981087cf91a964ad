package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// envPrefix namespaces every environment variable consumed by the
// server, e.g. TOKENKEEPER_DATABASE_DSN.
const envPrefix = "TOKENKEEPER_"

// parseEnv overlays Config fields from environment variables using the
// struct's env tags. Unset variables leave the current values in place.
func parseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}
	return nil
}
