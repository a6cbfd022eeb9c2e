package config

import "errors"

// Validation errors returned when required configuration values are
// incomplete or invalid.
var (
	// ErrMissingCredential indicates that no ThoughtForge API key is
	// configured at the point an authenticated call is attempted.
	ErrMissingCredential = errors.New("thoughtforge api key is not configured")
	// ErrInvalidAPIConfigs indicates invalid endpoint settings
	// (for example, an empty host or an out-of-range port).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
