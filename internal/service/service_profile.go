// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/store"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
)

// fallbackNamePrefix builds the display name of a profile created without
// one.
const fallbackNamePrefix = "Redirect: "

type profileService struct {
	storage store.ConfigStorage
	ids     IDGenerator

	logger *logger.Logger
}

// NewProfileService constructs the core ProfileService on top of storage.
// It trusts its input; compose it with [NewProfileValidationService] before
// exposing it to callers.
func NewProfileService(storage store.ConfigStorage, ids IDGenerator, logger *logger.Logger) ProfileService {
	return &profileService{
		storage: storage,
		ids:     ids,
		logger:  logger,
	}
}

func (s *profileService) CurrentAction(ctx context.Context) (models.Action, error) {
	cfg := s.storage.Read(ctx)

	profile, ok := cfg.ActiveProfile()
	if !ok {
		logger.FromContext(ctx).Error().
			Str("active", cfg.CurrentProfileID.String()).
			Int("profiles", len(cfg.Profiles)).
			Msg("active profile does not resolve")
		return models.Action{}, fmt.Errorf("%w: %s", ErrInconsistentConfiguration, cfg.CurrentProfileID)
	}

	return profile.Action, nil
}

func (s *profileService) CreateProfile(ctx context.Context, name *string, targetURI string) (uuid.UUID, error) {
	targetURI = strings.TrimSpace(targetURI)
	profile := models.Profile{
		Name:   displayName(name, targetURI),
		Action: models.RedirectTo(targetURI),
	}
	id := s.ids.Generate()

	err := s.storage.Update(ctx, func(cfg models.Configuration) (models.Configuration, error) {
		cfg.Profiles[id] = profile
		return cfg, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("error creating profile: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("profile_id", id.String()).
		Str("target_uri", targetURI).
		Msg("profile created")
	return id, nil
}

func (s *profileService) ActivateProfile(ctx context.Context, rawID string) error {
	id, err := parseProfileID(rawID)
	if err != nil {
		return err
	}

	err = s.storage.Update(ctx, func(cfg models.Configuration) (models.Configuration, error) {
		if _, ok := cfg.Profiles[id]; !ok {
			return cfg, ErrProfileNotFound
		}
		if cfg.CurrentProfileID == id {
			return cfg, store.ErrNoChanges
		}

		cfg.CurrentProfileID = id
		return cfg, nil
	})
	if err != nil {
		return fmt.Errorf("error activating profile %s: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("profile_id", id.String()).Msg("profile activated")
	return nil
}

func (s *profileService) DeleteProfile(ctx context.Context, rawID string) error {
	id, err := parseProfileID(rawID)
	if err != nil {
		return err
	}

	err = s.storage.Update(ctx, func(cfg models.Configuration) (models.Configuration, error) {
		profile, ok := cfg.Profiles[id]
		switch {
		case !ok:
			return cfg, store.ErrNoChanges
		case cfg.CurrentProfileID == id:
			return cfg, ErrProfileIsActive
		case !profile.Action.IsDeletable():
			return cfg, ErrProfileNotDeletable
		}

		delete(cfg.Profiles, id)
		return cfg, nil
	})
	if err != nil {
		return fmt.Errorf("error deleting profile %s: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("profile_id", id.String()).Msg("profile deleted")
	return nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	cfg := s.storage.Read(ctx)

	views := make([]models.ProfileView, 0, len(cfg.Profiles))
	for id, profile := range cfg.Profiles {
		views = append(views, models.NewProfileView(id, profile, id == cfg.CurrentProfileID))
	}

	slices.SortFunc(views, func(a, b models.ProfileView) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return views, nil
}

func displayName(name *string, targetURI string) string {
	if name != nil {
		if trimmed := strings.TrimSpace(*name); trimmed != "" {
			return trimmed
		}
	}

	return fallbackNamePrefix + targetURI
}

func parseProfileID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}

	return id, nil
}
