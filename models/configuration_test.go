// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfiguration_DecodesStateFileFormat verifies that a state file in the
// format written by earlier releases decodes into the expected value.
func TestConfiguration_DecodesStateFileFormat(t *testing.T) {
	raw := `{
  "current_profile_id": "7d4f2d3c-6f41-4b43-9a4e-0e5b1d7c2a10",
  "profiles": {
    "7d4f2d3c-6f41-4b43-9a4e-0e5b1d7c2a10": {
      "name": "https://astrid.tech",
      "action": {"Redirect": "https://astrid.tech"}
    },
    "0b1e6a52-3a61-4d7e-8b7d-6c1f1cf3a9e2": {
      "name": "Landing",
      "action": "FixedLandingPage"
    }
  }
}`

	var cfg Configuration
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	activeID := uuid.MustParse("7d4f2d3c-6f41-4b43-9a4e-0e5b1d7c2a10")
	landingID := uuid.MustParse("0b1e6a52-3a61-4d7e-8b7d-6c1f1cf3a9e2")

	assert.Equal(t, activeID, cfg.CurrentProfileID)
	require.Len(t, cfg.Profiles, 2)
	assert.Equal(t, RedirectTo("https://astrid.tech"), cfg.Profiles[activeID].Action)
	assert.Equal(t, FixedLandingPage(), cfg.Profiles[landingID].Action)
	assert.NoError(t, cfg.Validate())
}

// TestConfiguration_AcceptsLegacyCurrentProfileKey verifies the
// current_profile spelling is read as the active profile id.
func TestConfiguration_AcceptsLegacyCurrentProfileKey(t *testing.T) {
	id := uuid.New()
	raw := `{"current_profile":"` + id.String() + `","profiles":{"` + id.String() +
		`":{"name":"a","action":{"Redirect":"https://a.example"}}}}`

	var cfg Configuration
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, id, cfg.CurrentProfileID)
}

func TestConfiguration_RejectsMissingCurrentProfile(t *testing.T) {
	var cfg Configuration
	err := json.Unmarshal([]byte(`{"profiles":{}}`), &cfg)
	assert.ErrorIs(t, err, ErrMissingCurrentProfile)
}

// TestConfiguration_RoundTrip verifies that an encoded configuration decodes
// back into an equal value, for both action kinds.
func TestConfiguration_RoundTrip(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	cfg := Configuration{
		CurrentProfileID: second,
		Profiles: map[uuid.UUID]Profile{
			first:  {Name: "Redirect: https://a.example", Action: RedirectTo("https://a.example")},
			second: {Name: "landing", Action: FixedLandingPage()},
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	require.NoError(t, err)

	var decoded Configuration
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestConfiguration_Validate(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{
			name:    "valid single profile",
			cfg:     NewConfiguration(id, Profile{Name: "a", Action: RedirectTo("https://a.example")}),
			wantErr: nil,
		},
		{
			name:    "no profiles",
			cfg:     Configuration{CurrentProfileID: id},
			wantErr: ErrNoProfiles,
		},
		{
			name: "dangling active id",
			cfg: Configuration{
				CurrentProfileID: uuid.New(),
				Profiles:         map[uuid.UUID]Profile{id: {Name: "a", Action: RedirectTo("x")}},
			},
			wantErr: ErrActiveProfileMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestConfiguration_CloneIsIndependent verifies mutating a clone does not
// leak into the original profile map.
func TestConfiguration_CloneIsIndependent(t *testing.T) {
	id := uuid.New()
	original := NewConfiguration(id, Profile{Name: "a", Action: RedirectTo("https://a.example")})

	clone := original.Clone()
	clone.Profiles[uuid.New()] = Profile{Name: "b", Action: RedirectTo("https://b.example")}
	delete(clone.Profiles, id)

	assert.Len(t, original.Profiles, 1)
	assert.Contains(t, original.Profiles, id)
}

func TestAction_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown unit variant", input: `"Teleport"`, wantErr: ErrUnknownAction},
		{name: "unknown tagged variant", input: `{"Teleport":"x"}`, wantErr: ErrUnknownAction},
		{name: "two variants", input: `{"Redirect":"x","Other":"y"}`, wantErr: ErrMalformedAction},
		{name: "redirect target not a string", input: `{"Redirect":42}`, wantErr: ErrMalformedAction},
		{name: "number", input: `42`, wantErr: ErrMalformedAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Action
			err := json.Unmarshal([]byte(tt.input), &a)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAction_MarshalJSON_UnknownKind(t *testing.T) {
	_, err := json.Marshal(Action{Kind: "Teleport"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestNewProfileView(t *testing.T) {
	id := uuid.New()

	view := NewProfileView(id, Profile{Name: "landing", Action: FixedLandingPage()}, true)

	assert.Equal(t, id, view.ID)
	assert.Equal(t, ActionFixedLandingPage, view.Kind)
	assert.Empty(t, view.TargetURI)
	assert.True(t, view.Active)
	assert.False(t, view.Deletable)
}
