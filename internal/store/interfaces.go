// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-armqr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_storage_mock.go -package=mock

// ConfigStorage is the single source of truth for the service
// [models.Configuration]. Implementations serialize every call: Read,
// Replace and Update never run concurrently with each other.
type ConfigStorage interface {
	// Read returns a snapshot of the cached configuration. The snapshot is a
	// copy; modifying it has no effect on the storage.
	Read(ctx context.Context) models.Configuration

	// Replace swaps the whole configuration and persists it before
	// returning. A configuration violating the model invariants is rejected
	// with ErrInvalidConfiguration and nothing changes.
	Replace(ctx context.Context, cfg models.Configuration) error

	// Update runs fn on a snapshot and replaces the configuration with its
	// result, holding exclusive access for the whole cycle. If fn returns
	// ErrNoChanges nothing is written and Update returns nil; any other
	// error from fn is returned as is.
	Update(ctx context.Context, fn func(models.Configuration) (models.Configuration, error)) error

	// Path returns the location of the backing file.
	Path() string
}
