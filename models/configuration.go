// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Profile is a named destination. Its identifier is the key under which it
// is stored in [Configuration.Profiles].
type Profile struct {
	// Name is the display string shown on the admin page.
	Name string `json:"name"`

	// Action is what the public entry point does while the profile is active.
	Action Action `json:"action"`
}

// Configuration is the full persisted state of the service: the set of
// profiles and the pointer to the one currently serving public traffic.
//
// A valid Configuration always holds at least one profile and its
// CurrentProfileID always resolves; see [Configuration.Validate].
type Configuration struct {
	// CurrentProfileID is the id of the active profile.
	CurrentProfileID uuid.UUID `json:"current_profile_id"`

	// Profiles maps profile ids to profiles.
	Profiles map[uuid.UUID]Profile `json:"profiles"`
}

// NewConfiguration returns a single-profile configuration whose only
// profile is active.
func NewConfiguration(id uuid.UUID, profile Profile) Configuration {
	return Configuration{
		CurrentProfileID: id,
		Profiles:         map[uuid.UUID]Profile{id: profile},
	}
}

// Validate checks the configuration invariants.
func (c Configuration) Validate() error {
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}
	if _, ok := c.Profiles[c.CurrentProfileID]; !ok {
		return fmt.Errorf("%w: %s", ErrActiveProfileMissing, c.CurrentProfileID)
	}
	return nil
}

// ActiveProfile returns the profile referenced by CurrentProfileID.
func (c Configuration) ActiveProfile() (Profile, bool) {
	p, ok := c.Profiles[c.CurrentProfileID]
	return p, ok
}

// Clone returns a deep copy so that callers can modify the profile map
// without affecting the original value.
func (c Configuration) Clone() Configuration {
	profiles := make(map[uuid.UUID]Profile, len(c.Profiles))
	for id, p := range c.Profiles {
		profiles[id] = p
	}

	return Configuration{
		CurrentProfileID: c.CurrentProfileID,
		Profiles:         profiles,
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. Besides current_profile_id it
// accepts the current_profile key written by older builds.
func (c *Configuration) UnmarshalJSON(b []byte) error {
	var raw struct {
		CurrentProfileID *uuid.UUID            `json:"current_profile_id"`
		CurrentProfile   *uuid.UUID            `json:"current_profile"`
		Profiles         map[uuid.UUID]Profile `json:"profiles"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case raw.CurrentProfileID != nil:
		c.CurrentProfileID = *raw.CurrentProfileID
	case raw.CurrentProfile != nil:
		c.CurrentProfileID = *raw.CurrentProfile
	default:
		return ErrMissingCurrentProfile
	}

	c.Profiles = raw.Profiles
	return nil
}

// ProfileView is the flattened, transport-friendly representation of a
// profile used by the admin page and the JSON admin API.
type ProfileView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Kind      ActionKind `json:"kind"`
	TargetURI string     `json:"target_uri,omitempty"`
	Active    bool       `json:"active"`
	Deletable bool       `json:"deletable"`
}

// NewProfileView flattens p stored under id.
func NewProfileView(id uuid.UUID, p Profile, active bool) ProfileView {
	return ProfileView{
		ID:        id,
		Name:      p.Name,
		Kind:      p.Action.Kind,
		TargetURI: p.Action.TargetURI,
		Active:    active,
		Deletable: p.Action.IsDeletable(),
	}
}

// NewProfileRequest carries the admin input for creating a profile.
type NewProfileRequest struct {
	// Name is optional; a fallback is derived from TargetURI when nil or blank.
	Name *string `json:"name,omitempty"`

	// TargetURI is the redirect destination. Required.
	TargetURI string `json:"target_uri"`
}

// NewProfileResponse is returned by the JSON admin API after a profile was
// created.
type NewProfileResponse struct {
	ID uuid.UUID `json:"id"`
}
