package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*ClientConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			Key:            config.API.Key,
			Host:           config.API.Host,
			Port:           config.API.Port,
			RequestTimeout: config.API.RequestTimeout,
		},
		Store: ClientStore{
			Path: config.Store.Path,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withEnvFile loads the optional .env file into the process environment.
// It must run before withEnv and withLegacyEnv so file values are visible to
// the environment passes. THOUGHTFORGE_ENV_FILE wins over fallbackPath.
func (b *configBuilder) withEnvFile(fallbackPath string) *configBuilder {
	path := os.Getenv("THOUGHTFORGE_ENV_FILE")
	if path == "" {
		path = fallbackPath
	}

	if err := loadEnvFile(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

// withFlags appends an already-parsed flag source (see [ParseFlags]). Flags
// sit behind the environment passes, so environment values win over them.
func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}

	return b
}

func (b *configBuilder) withLegacyEnv() *configBuilder {
	legacyCfg, err := parseLegacyEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, legacyCfg)
	return b
}

// withDefaults appends the built-in endpoint defaults. Must be the last
// source so it only fills fields every other source left empty.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		API: API{
			Host:           DefaultHost,
			Port:           DefaultPort,
			RequestTimeout: DefaultRequestTimeout,
		},
	})

	return b
}
