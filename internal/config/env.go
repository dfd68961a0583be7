// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds the variables read by older armqr deployments. They only
// fill fields the current names left empty.
type legacyEnv struct {
	StateFilePath string `env:"ROCKET_STATE_FILE_PATH"`
	AdminPassword string `env:"ROCKET_ADMIN_PASSWORD"`
	Port          string `env:"ROCKET_PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The legacy ROCKET_* variables are applied afterwards to fields that are
// still zero. ROCKET_PORT becomes a listen address on all interfaces.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	legacy, err := env.ParseAs[legacyEnv]()
	if err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}

	if cfg.Storage.Files.StateFilePath == "" {
		cfg.Storage.Files.StateFilePath = legacy.StateFilePath
	}
	if cfg.App.AdminPassword == "" {
		cfg.App.AdminPassword = legacy.AdminPassword
	}
	if cfg.Server.HTTPAddress == "" && legacy.Port != "" {
		cfg.Server.HTTPAddress = "0.0.0.0:" + legacy.Port
	}

	return nil
}
