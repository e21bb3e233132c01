// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-suitecrm Authors

package config

// Config is the validated connection configuration consumed by a SuiteCRM
// API client. A Config is immutable after construction: it is either fully
// populated and valid, or it was never created.
type Config struct {
	// URL is the base endpoint of the SuiteCRM instance
	// (e.g. "https://crm.example.com").
	URL string `validate:"required"`

	// ClientID is the OAuth2 client identifier used to obtain access
	// tokens.
	ClientID string `validate:"required"`

	// ClientSecret is the OAuth2 client secret paired with ClientID.
	// Must be kept confidential.
	ClientSecret string `validate:"required"`

	// CustomModules optionally describes non-standard CRM modules as an
	// ordered sequence of flat string-to-string mappings. Defaults to an
	// empty sequence.
	CustomModules []map[string]string
}

// New constructs a validated Config. The three scalar fields are required
// and must be non-empty; customModules may be omitted, in which case the
// record carries an empty sequence.
//
// Returns an error wrapping [ErrInvalidConfig] if a required field is
// missing, and no record in that case.
func New(url, clientID, clientSecret string, customModules ...map[string]string) (*Config, error) {
	cfg := &Config{
		URL:           url,
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		CustomModules: customModules,
	}
	if cfg.CustomModules == nil {
		cfg.CustomModules = []map[string]string{}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parser is implemented by all configuration source adapters.
//
// A Parser obtains raw configuration from exactly one external source and
// converts it into a *Config. The first successful ParseConfig call caches
// its result; subsequent calls return the cached record without touching
// the source again. Parsers are single-shot and not safe for concurrent
// use; callers needing concurrent access must synchronize externally.
type Parser interface {
	// ParseConfig parses the underlying source into a Config, caching the
	// result. Every failure leaves the cache empty.
	ParseConfig() (*Config, error)

	// Parsed returns the cached record and whether one has been stored yet.
	Parsed() (*Config, bool)
}
