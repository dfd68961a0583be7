// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
)

const (
	// DefaultStateFilePath is used when no state file path is configured.
	DefaultStateFilePath = "armqr.json"

	// DefaultRedirect is the target of the profile seeded into a fresh
	// state file.
	DefaultRedirect = "https://astrid.tech"

	stateFilePerms = 0o600
)

// configFileStorage is the JSON-file implementation of [ConfigStorage].
//
// The cached configuration is authoritative once the storage is created:
// the file is written on every change but never re-read. One mutex guards
// both the cache and the file, so a Replace (cache swap plus file write) is
// atomic as observed through Read.
type configFileStorage struct {
	mu     sync.Mutex
	path   string
	cached models.Configuration

	logger *logger.Logger
}

// NewConfigFileStorage loads the configuration stored at path.
//
// If the file is missing, unreadable, malformed or violates the
// configuration invariants, a default configuration holding a single active
// redirect profile to defaultRedirect is written to path instead. Failing to
// write it returns an error wrapping [ErrStartupIO].
func NewConfigFileStorage(path, defaultRedirect string, log *logger.Logger) (ConfigStorage, error) {
	if path == "" {
		path = DefaultStateFilePath
	}
	if defaultRedirect == "" {
		defaultRedirect = DefaultRedirect
	}

	s := &configFileStorage{path: path, logger: log}

	cfg, err := readConfigFile(path)
	if err == nil {
		s.cached = cfg
		log.Info().Str("path", path).Int("profiles", len(cfg.Profiles)).Msg("configuration loaded")
		return s, nil
	}

	log.Warn().Err(err).Str("path", path).Msg("configuration could not be loaded, writing default")

	cfg = defaultConfiguration(defaultRedirect)
	if err := writeConfigFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStartupIO, path, err)
	}

	s.cached = cfg
	return s, nil
}

func defaultConfiguration(target string) models.Configuration {
	return models.NewConfiguration(uuid.New(), models.Profile{
		Name:   target,
		Action: models.RedirectTo(target),
	})
}

// Read implements [ConfigStorage].
func (s *configFileStorage) Read(_ context.Context) models.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cached.Clone()
}

// Replace implements [ConfigStorage].
func (s *configFileStorage) Replace(ctx context.Context, cfg models.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(ctx, cfg)
}

// Update implements [ConfigStorage].
func (s *configFileStorage) Update(ctx context.Context, fn func(models.Configuration) (models.Configuration, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.cached.Clone())
	if errors.Is(err, ErrNoChanges) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.replace(ctx, updated)
}

// Path implements [ConfigStorage].
func (s *configFileStorage) Path() string {
	return s.path
}

// replace must be called with s.mu held.
func (s *configFileStorage) replace(ctx context.Context, cfg models.Configuration) error {
	log := logger.FromContext(ctx)

	if err := cfg.Validate(); err != nil {
		log.Err(err).Msg("rejected configuration replacement")
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	// callers keep no reference into the cache
	cfg = cfg.Clone()

	previous := s.cached
	s.cached = cfg

	if err := writeConfigFile(s.path, cfg); err != nil {
		s.cached = previous
		log.Err(err).Str("path", s.path).Msg("writing configuration failed, cache rolled back")
		return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	log.Debug().Str("path", s.path).Str("active", cfg.CurrentProfileID.String()).Msg("configuration stored")
	return nil
}

func readConfigFile(path string) (models.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("error reading state file: %w", err)
	}

	var cfg models.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("error decoding state file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return models.Configuration{}, fmt.Errorf("state file holds an invalid configuration: %w", err)
	}

	return cfg, nil
}

// writeConfigFile serializes cfg once and swaps it into place with a rename,
// so the file always holds a complete, previously committed configuration.
func writeConfigFile(path string, cfg models.Configuration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}
	data = append(data, '\n')

	return writeFileAtomic(path, data, stateFilePerms)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("error setting state file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing state file: %w", err)
	}

	committed = true
	return nil
}
