// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/logger"
)

// Storages groups the persistence backends used by the service layer.
type Storages struct {
	ConfigStorage ConfigStorage
}

// NewStorages initializes every storage backend from cfg. A failure here is
// fatal: the caller is expected to abort startup.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	configStorage, err := NewConfigFileStorage(cfg.Files.StateFilePath, cfg.Files.DefaultRedirect, log)
	if err != nil {
		return nil, fmt.Errorf("error creating config file storage: %w", err)
	}

	return &Storages{ConfigStorage: configStorage}, nil
}
