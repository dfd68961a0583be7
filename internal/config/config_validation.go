// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinels from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminUser == "" {
		return fmt.Errorf("%w: admin user is empty", ErrInvalidAppConfigs)
	}

	if cfg.App.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.App.AdminPasswordHash)); err != nil {
			return fmt.Errorf("%w: admin password hash: %w", ErrInvalidAppConfigs, err)
		}
	} else if cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: admin password or password hash is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Files.StateFilePath == "" {
		return fmt.Errorf("%w: state file path is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Files.DefaultRedirect != "" {
		u, err := url.Parse(cfg.Storage.Files.DefaultRedirect)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: default redirect %q is not an absolute URI", ErrInvalidStorageConfigs, cfg.Storage.Files.DefaultRedirect)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address %q is not a base URL", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.AdminUser == "" {
		return fmt.Errorf("%w: admin user is empty", ErrInvalidAdapterConfigs)
	}

	return nil
}
