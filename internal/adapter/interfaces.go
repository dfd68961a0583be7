// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the armqr JSON admin API on behalf of armqrctl.
//
// [AdminAdapter] hides the transport from the command layer. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_adapter_mock.go -package=mock

// AdminAdapter is the client side of the admin API.
type AdminAdapter interface {
	// SetCredentials stores the basic auth credentials attached to every
	// admin request.
	SetCredentials(user, password string)

	// ListProfiles returns all profiles as the server orders them.
	ListProfiles(ctx context.Context) ([]models.ProfileView, error)

	// CreateProfile creates a redirect profile and returns its id.
	CreateProfile(ctx context.Context, req models.NewProfileRequest) (uuid.UUID, error)

	// ActivateProfile makes the profile with the given id active.
	ActivateProfile(ctx context.Context, id string) error

	// DeleteProfile removes the profile with the given id.
	DeleteProfile(ctx context.Context, id string) error

	// Version returns the server version. It needs no credentials.
	Version(ctx context.Context) (string, error)
}
