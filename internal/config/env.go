package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv mirrors the unprefixed variable names used by early ThoughtForge
// clients. The prefixed THOUGHTFORGE_HOST / THOUGHTFORGE_PORT names take
// precedence; these are consulted only for fields the prefixed pass left
// empty.
type legacyEnv struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT"`
}

// parseLegacyEnv reads the legacy HOST / PORT variables and returns them as a
// *StructuredConfig suitable for merging behind the prefixed environment
// pass.
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	return &StructuredConfig{
		API: API{
			Host: legacy.Host,
			Port: legacy.Port,
		},
	}, nil
}
