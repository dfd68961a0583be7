// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-armqr/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the optional display name of a new profile.
	FieldName = "name"

	// FieldTargetURI targets the redirect destination of a new profile.
	FieldTargetURI = "target_uri"
)

// MaxNameLength is the longest display name, in runes, accepted for a
// profile.
const MaxNameLength = 256

// ProfileValidator implements the Validator interface for admin input that
// creates profiles. It accepts [models.NewProfileRequest] by value or
// pointer.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator and returns it as
// the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches validation to the type-specific method. With no fields
// given every field is checked.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewProfileRequest:
		return v.validateNewProfileRequest(ctx, value, fields...)
	case *models.NewProfileRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNewProfileRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateNewProfileRequest(_ context.Context, request models.NewProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTargetURI, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldTargetURI:
			if err := validateTargetURI(request.TargetURI); err != nil {
				return err
			}
		case FieldName:
			if request.Name != nil && utf8.RuneCountInString(*request.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTargetURI(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTargetURI
	}

	if _, err := url.Parse(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTargetURI, err)
	}

	return nil
}
