package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-armqr/internal/validators"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
)

// ProfileValidationService rejects unusable admin input before it reaches
// the wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewProfileValidator(),
	}
}

func (v *ProfileValidationService) CurrentAction(ctx context.Context) (models.Action, error) {
	return v.inner.CurrentAction(ctx)
}

func (v *ProfileValidationService) CreateProfile(ctx context.Context, name *string, targetURI string) (uuid.UUID, error) {
	request := models.NewProfileRequest{Name: name, TargetURI: targetURI}
	if err := v.validator.Validate(ctx, request); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.CreateProfile(ctx, name, targetURI)
}

func (v *ProfileValidationService) ActivateProfile(ctx context.Context, id string) error {
	return v.inner.ActivateProfile(ctx, id)
}

func (v *ProfileValidationService) DeleteProfile(ctx context.Context, id string) error {
	return v.inner.DeleteProfile(ctx, id)
}

func (v *ProfileValidationService) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	return v.inner.ListProfiles(ctx)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
