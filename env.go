// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-suitecrm Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/go-suitecrm/config/logger"
)

// envConfig maps the fixed environment variable names onto record fields
// via caarlos0/env tags. notEmpty rejects unset and empty values alike.
type envConfig struct {
	URL          string `env:"PYSUITECRM_URL,notEmpty"`
	ClientID     string `env:"PYSUITECRM_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"PYSUITECRM_CLIENT_SECRET,notEmpty"`
}

// EnvParser reads the connection configuration from process environment
// variables:
//
//   - PYSUITECRM_URL
//   - PYSUITECRM_CLIENT_ID
//   - PYSUITECRM_CLIENT_SECRET
//
// All three are required and have no defaults. Environment variables carry
// no structured module list, so CustomModules is always empty. The parser
// only ever reads the environment; it never mutates it.
type EnvParser struct {
	parsed *Config
	log    *logger.Logger
}

// NewEnvParser constructs an EnvParser. Construction performs no I/O; the
// environment is first touched by ParseConfig. A nil log disables logging.
func NewEnvParser(log *logger.Logger) *EnvParser {
	if log == nil {
		log = logger.Nop()
	}

	return &EnvParser{log: log}
}

// ParseConfig reads the three environment variables and builds the record.
// The first successful call caches the record; later calls return the same
// record without re-reading the environment. On failure the cache stays
// empty and the returned error wraps [ErrInvalidEnvVars].
func (p *EnvParser) ParseConfig() (*Config, error) {
	if p.parsed != nil {
		p.log.Debug().Msg("env config already parsed, returning cached record")
		return p.parsed, nil
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		p.log.Debug().Err(err).Msg("env config parse failed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvVars, err)
	}

	cfg, err := New(ec.URL, ec.ClientID, ec.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvVars, err)
	}

	p.parsed = cfg
	p.log.Debug().Str("url", cfg.URL).Msg("env config parsed")
	return p.parsed, nil
}

// Parsed returns the cached record, if any.
func (p *EnvParser) Parsed() (*Config, bool) {
	return p.parsed, p.parsed != nil
}
