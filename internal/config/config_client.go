package config

import (
	"fmt"
	"time"
)

// ClientAPI holds the resolved remote endpoint settings used by the client
// transport layer.
type ClientAPI struct {
	// Key is the ThoughtForge API key. May be empty until validated by
	// [ClientConfig.ValidateCredential].
	Key string
	// Host is the server host name or IP address.
	Host string
	// Port is the server TCP port.
	Port int
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStore holds the resolved local store settings.
type ClientStore struct {
	// Path is the SQLite database file path; empty disables the store.
	Path string
}

// ClientConfig is the immutable configuration view consumed by the SDK. It is
// assembled once from [StructuredConfig] at load time and passed by reference
// to session and adapter constructors.
type ClientConfig struct {
	// API contains remote endpoint settings and the credential.
	API ClientAPI
	// Store contains local run-history store settings.
	Store ClientStore
}

// BaseURL returns the http base URL for the configured endpoint in the form
// "http://host:port".
func (cfg *ClientConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port)
}
