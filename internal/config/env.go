// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// buildEnv holds the two wallet inputs that are not APP_ prefixed.
type buildEnv struct {
	BaseURL    string `env:"BASE_URL"`
	Production bool   `env:"PROD"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// BASE_URL and PROD live outside the APP_ prefix and are read separately
// into cfg.App.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var b buildEnv
	if err := env.Parse(&b); err != nil {
		return fmt.Errorf("error getting build env configs: %w", err)
	}

	cfg.App.BaseURL = b.BaseURL
	cfg.App.Production = b.Production

	return nil
}
