// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-suitecrm Authors

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validator instance shared by all record constructions.
var v = validator.New()

// validate checks that the record satisfies all field invariants before it
// becomes observable to callers. The only rule in use is `required` on the
// three scalar fields.
//
// Returns nil if the record is valid, or an error wrapping
// [ErrInvalidConfig] otherwise.
func (cfg *Config) validate() error {
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
