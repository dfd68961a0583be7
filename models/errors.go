// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Errors returned while decoding or validating a [Configuration].
var (
	// ErrUnknownAction is returned for an action variant this build does not
	// know about.
	ErrUnknownAction = errors.New("unknown profile action")

	// ErrMalformedAction is returned when an action cannot be decoded at all.
	ErrMalformedAction = errors.New("malformed profile action")

	// ErrMissingCurrentProfile is returned when neither current_profile_id
	// nor current_profile is present in the encoded configuration.
	ErrMissingCurrentProfile = errors.New("configuration has no current profile id")

	// ErrNoProfiles is returned by [Configuration.Validate] for an empty
	// profile set.
	ErrNoProfiles = errors.New("configuration has no profiles")

	// ErrActiveProfileMissing is returned by [Configuration.Validate] when
	// the current profile id does not reference a stored profile.
	ErrActiveProfileMissing = errors.New("active profile is not in the profile set")
)
