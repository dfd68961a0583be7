// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ActionKind names the variant carried by an [Action].
type ActionKind string

const (
	// ActionRedirect sends public visitors to Action.TargetURI.
	ActionRedirect ActionKind = "Redirect"

	// ActionFixedLandingPage renders the built-in landing page instead of
	// redirecting. Profiles with this action cannot be deleted.
	ActionFixedLandingPage ActionKind = "FixedLandingPage"
)

// Action describes what the public entry point does while a profile is
// active.
//
// On disk it keeps the externally tagged form used by the state file since
// its first version:
//
//	{"Redirect": "https://example.com"}
//	"FixedLandingPage"
type Action struct {
	// Kind selects the variant.
	Kind ActionKind

	// TargetURI is the redirect destination. Empty for every kind other
	// than [ActionRedirect].
	TargetURI string
}

// RedirectTo builds a redirect action pointing at targetURI.
func RedirectTo(targetURI string) Action {
	return Action{Kind: ActionRedirect, TargetURI: targetURI}
}

// FixedLandingPage builds the landing page action.
func FixedLandingPage() Action {
	return Action{Kind: ActionFixedLandingPage}
}

// IsRedirect reports whether a is a redirect action.
func (a Action) IsRedirect() bool {
	return a.Kind == ActionRedirect
}

// IsDeletable reports whether a profile carrying this action may be removed
// from the configuration.
func (a Action) IsDeletable() bool {
	return a.Kind != ActionFixedLandingPage
}

// MarshalJSON implements [json.Marshaler].
func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionRedirect:
		return json.Marshal(map[ActionKind]string{ActionRedirect: a.TargetURI})
	case ActionFixedLandingPage:
		return json.Marshal(ActionFixedLandingPage)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (a *Action) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrMalformedAction
	}

	// unit variant
	if b[0] == '"' {
		var kind ActionKind
		if err := json.Unmarshal(b, &kind); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedAction, err)
		}
		if kind != ActionFixedLandingPage {
			return fmt.Errorf("%w: %q", ErrUnknownAction, kind)
		}
		*a = FixedLandingPage()
		return nil
	}

	var tagged map[ActionKind]json.RawMessage
	if err := json.Unmarshal(b, &tagged); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedAction, err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrMalformedAction, len(tagged))
	}

	for kind, raw := range tagged {
		if kind != ActionRedirect {
			return fmt.Errorf("%w: %q", ErrUnknownAction, kind)
		}

		var target string
		if err := json.Unmarshal(raw, &target); err != nil {
			return fmt.Errorf("%w: redirect target: %w", ErrMalformedAction, err)
		}
		*a = RedirectTo(target)
	}

	return nil
}
