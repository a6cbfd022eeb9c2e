package config

// validate checks that the merged [ClientConfig] satisfies the invariants the
// transport layer depends on. The API key is deliberately not checked here:
// configuration with an absent credential loads fine, and the credential is
// enforced by [ClientConfig.ValidateCredential] at the point an authenticated
// call is attempted.
func (cfg *ClientConfig) validate() error {
	if cfg.API.Host == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return ErrInvalidAPIConfigs
	}

	if cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	return nil
}

// ValidateCredential reports whether the configuration carries a usable API
// key. It returns [ErrMissingCredential] when the key is empty. Callers must
// invoke it before the first authenticated request.
func (cfg *ClientConfig) ValidateCredential() error {
	if cfg.API.Key == "" {
		return ErrMissingCredential
	}

	return nil
}
