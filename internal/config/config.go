package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ThoughtForge client SDK. It is populated by merging values from the process
// environment, an optional .env file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote ThoughtForge endpoint settings and the API key.
	API API `envPrefix:"THOUGHTFORGE_"`

	// Store holds settings for the optional local run-history store.
	Store Store `envPrefix:"THOUGHTFORGE_STORE_"`

	// EnvFilePath is the optional path to a .env file. When non-empty, the
	// file is loaded into the process environment before the environment
	// pass; already-set variables are never overridden, so real environment
	// values always win over file values.
	// Populated via the THOUGHTFORGE_ENV_FILE environment variable.
	EnvFilePath string `env:"THOUGHTFORGE_ENV_FILE"`
}

// API holds the remote endpoint configuration for the ThoughtForge HTTP API.
type API struct {
	// Key is the ThoughtForge API key sent in the X-thoughtforge-key header
	// of every request. Must be kept confidential.
	// Env: THOUGHTFORGE_API_KEY
	Key string `env:"API_KEY"`

	// Host is the ThoughtForge server host name or IP address.
	// Env: THOUGHTFORGE_HOST (legacy alias: HOST)
	Host string `env:"HOST"`

	// Port is the ThoughtForge server TCP port.
	// Env: THOUGHTFORGE_PORT (legacy alias: PORT)
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: THOUGHTFORGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Store holds settings for the local SQLite run-history store.
type Store struct {
	// Path is the SQLite database file path. An empty value leaves the
	// store disabled.
	// Env: THOUGHTFORGE_STORE_PATH
	Path string `env:"PATH"`
}

// Default endpoint values shared by all ThoughtForge clients.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 4343
	DefaultRequestTimeout = 30 * time.Second
)

// GetClientConfig loads, merges, and validates the SDK configuration from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Process environment (THOUGHTFORGE_-prefixed variables)
//  2. Legacy environment aliases (HOST, PORT)
//  3. Built-in defaults
//
// An optional .env file (path from THOUGHTFORGE_ENV_FILE, falling back to
// "./.env") is loaded into the process environment first and therefore
// participates in sources 1 and 2 without overriding real environment values.
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation. A missing API key is not a load
// error; it is reported by [ClientConfig.ValidateCredential] at the point an
// authenticated call is attempted.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnvFile("").
		withEnv().
		withLegacyEnv().
		withDefaults().
		build()
}

// GetClientConfigWithFlags is [GetClientConfig] with an additional
// already-parsed flag source (see [ParseFlags]) merged between the prefixed
// environment pass and the legacy aliases: environment values win over flag
// values, flag values win over legacy aliases and defaults. An -env-file flag
// value is used when THOUGHTFORGE_ENV_FILE is unset.
func GetClientConfigWithFlags(flags *StructuredConfig) (*ClientConfig, error) {
	fallbackEnvFile := ""
	if flags != nil {
		fallbackEnvFile = flags.EnvFilePath
	}

	return newConfigBuilder().
		withEnvFile(fallbackEnvFile).
		withEnv().
		withFlags(flags).
		withLegacyEnv().
		withDefaults().
		build()
}
