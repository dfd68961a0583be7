// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [ConfigStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStartupIO is returned when the state file can neither be loaded nor
	// seeded with a default configuration. The service cannot run without a
	// durable configuration, so this is fatal at startup.
	ErrStartupIO = errors.New("state file is not usable")

	// ErrPersistenceFailure is returned when writing the state file fails
	// during Replace or Update. The in-memory configuration is rolled back to
	// the last successfully persisted value before the error is returned.
	ErrPersistenceFailure = errors.New("failed to persist configuration")

	// ErrInvalidConfiguration is returned when a replacement configuration
	// has no profiles or an active profile id that does not resolve.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoChanges may be returned by an Update callback to signal that the
	// snapshot needs no modification. Update then skips the write.
	ErrNoChanges = errors.New("no changes to store")
)
