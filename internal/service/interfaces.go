package service

import (
	"context"

	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
)

// ProfileService runs the transactions behind the public entry point and the
// admin surface. Every mutation is a single read-modify-write on the
// configuration store.
type ProfileService interface {
	// CurrentAction returns the action of the active profile.
	CurrentAction(ctx context.Context) (models.Action, error)

	// CreateProfile adds a redirect profile and returns its id. The active
	// profile is left unchanged.
	CreateProfile(ctx context.Context, name *string, targetURI string) (uuid.UUID, error)

	// ActivateProfile makes the profile with the given textual id active.
	ActivateProfile(ctx context.Context, id string) error

	// DeleteProfile removes the profile with the given textual id. Removing
	// an id that is not present is not an error.
	DeleteProfile(ctx context.Context, id string) error

	// ListProfiles returns every profile ordered by name, then id.
	ListProfiles(ctx context.Context) ([]models.ProfileView, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AdminAuthService checks the credentials presented to the admin surface.
type AdminAuthService interface {
	Verify(ctx context.Context, user, password string) error
}

// IDGenerator produces identifiers for new profiles.
type IDGenerator interface {
	Generate() uuid.UUID
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
// Implementations wrap an existing ProfileService to add behavior such as
// logging or validating.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService // returns a decorated ProfileService applying additional behavior
}
