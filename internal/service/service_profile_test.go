// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/mock"
	"github.com/MKhiriev/go-armqr/internal/store"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// sequenceIDs hands out the given ids in order.
type sequenceIDs struct {
	ids []uuid.UUID
}

func (g *sequenceIDs) Generate() uuid.UUID {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

func strPtr(s string) *string { return &s }

// newFileBackedService returns the validated ProfileService on a fresh state
// file holding one redirect profile to https://a.example.
func newFileBackedService(t *testing.T, ids IDGenerator) (ProfileService, store.ConfigStorage) {
	t.Helper()

	storage, err := store.NewConfigFileStorage(filepath.Join(t.TempDir(), "armqr.json"), "https://a.example", logger.Nop())
	require.NoError(t, err)

	if ids == nil {
		ids = &randomIDs{}
	}
	svc := NewProfileValidationService().Wrap(NewProfileService(storage, ids, logger.Nop()))
	return svc, storage
}

type randomIDs struct{}

func (randomIDs) Generate() uuid.UUID { return uuid.New() }

// ─────────────────────────────────────────────
// CurrentAction
// ─────────────────────────────────────────────

func TestCurrentAction_ReturnsActiveAction(t *testing.T) {
	svc, _ := newFileBackedService(t, nil)

	action, err := svc.CurrentAction(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.RedirectTo("https://a.example"), action)
}

func TestCurrentAction_DanglingActiveID(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().Read(gomock.Any()).Return(models.Configuration{
		CurrentProfileID: uuid.New(),
		Profiles:         map[uuid.UUID]models.Profile{uuid.New(): {Name: "a", Action: models.RedirectTo("x")}},
	})

	svc := NewProfileService(storage, randomIDs{}, logger.Nop())
	_, err := svc.CurrentAction(context.Background())

	assert.ErrorIs(t, err, ErrInconsistentConfiguration)
}

// ─────────────────────────────────────────────
// CreateProfile
// ─────────────────────────────────────────────

func TestCreateProfile_AddsProfileWithoutActivating(t *testing.T) {
	newID := uuid.New()
	svc, storage := newFileBackedService(t, &sequenceIDs{ids: []uuid.UUID{newID}})
	ctx := context.Background()
	before := storage.Read(ctx)

	id, err := svc.CreateProfile(ctx, strPtr("B"), "https://b.example")

	require.NoError(t, err)
	assert.Equal(t, newID, id)

	after := storage.Read(ctx)
	require.Len(t, after.Profiles, 2)
	assert.Equal(t, before.CurrentProfileID, after.CurrentProfileID)
	assert.Equal(t, models.Profile{Name: "B", Action: models.RedirectTo("https://b.example")}, after.Profiles[newID])
}

func TestCreateProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		target   string
		wantName string
	}{
		{name: "given", input: strPtr("Conference"), target: "https://c.example", wantName: "Conference"},
		{name: "given is trimmed", input: strPtr("  Conference "), target: "https://c.example", wantName: "Conference"},
		{name: "nil falls back", input: nil, target: "https://c.example", wantName: "Redirect: https://c.example"},
		{name: "blank falls back", input: strPtr("   "), target: "https://c.example", wantName: "Redirect: https://c.example"},
		{name: "target is trimmed", input: nil, target: "  https://c.example\n", wantName: "Redirect: https://c.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storage := newFileBackedService(t, nil)
			ctx := context.Background()

			id, err := svc.CreateProfile(ctx, tt.input, tt.target)
			require.NoError(t, err)

			profile := storage.Read(ctx).Profiles[id]
			assert.Equal(t, tt.wantName, profile.Name)
			assert.Equal(t, "https://c.example", profile.Action.TargetURI)
		})
	}
}

func TestCreateProfile_RejectsUnusableTarget(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "empty", target: ""},
		{name: "blank", target: "   "},
		{name: "unparseable", target: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storage := newFileBackedService(t, nil)
			ctx := context.Background()
			before := storage.Read(ctx)

			id, err := svc.CreateProfile(ctx, nil, tt.target)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, uuid.Nil, id)
			assert.Equal(t, before, storage.Read(ctx))
		})
	}
}

func TestCreateProfile_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrPersistenceFailure)

	svc := NewProfileService(storage, randomIDs{}, logger.Nop())
	id, err := svc.CreateProfile(context.Background(), nil, "https://b.example")

	assert.ErrorIs(t, err, store.ErrPersistenceFailure)
	assert.Equal(t, uuid.Nil, id)
}

// ─────────────────────────────────────────────
// ActivateProfile
// ─────────────────────────────────────────────

func TestActivateProfile_InvalidIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	// no storage calls expected

	svc := NewProfileService(storage, randomIDs{}, logger.Nop())

	for _, raw := range []string{"", "not-a-uuid", "1234", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"} {
		assert.ErrorIs(t, svc.ActivateProfile(context.Background(), raw), ErrInvalidIdentifier, raw)
	}
}

func TestActivateProfile_UnknownID(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()
	before := storage.Read(ctx)

	err := svc.ActivateProfile(ctx, uuid.NewString())

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, before, storage.Read(ctx))
}

// TestActivateProfile_UnknownIDDoesNotWrite verifies that the store is never
// asked to replace the configuration for an unknown id.
func TestActivateProfile_UnknownIDDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)

	current := models.NewConfiguration(uuid.New(), models.Profile{Name: "a", Action: models.RedirectTo("https://a.example")})
	storage.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(models.Configuration) (models.Configuration, error)) error {
			_, err := fn(current.Clone())
			return err
		})

	svc := NewProfileService(storage, randomIDs{}, logger.Nop())
	err := svc.ActivateProfile(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestActivateProfile_AlreadyActiveIsNoOp(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()
	before := storage.Read(ctx)

	require.NoError(t, svc.ActivateProfile(ctx, before.CurrentProfileID.String()))
	assert.Equal(t, before, storage.Read(ctx))
}

func TestActivateProfile_AcceptsUppercaseAndPadding(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()

	id, err := svc.CreateProfile(ctx, nil, "https://b.example")
	require.NoError(t, err)

	raw := "  " + strings.ToUpper(id.String()) + " "
	require.NoError(t, svc.ActivateProfile(ctx, raw))
	assert.Equal(t, id, storage.Read(ctx).CurrentProfileID)
}

// ─────────────────────────────────────────────
// DeleteProfile
// ─────────────────────────────────────────────

func TestDeleteProfile_RemovesInactiveProfile(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()

	id, err := svc.CreateProfile(ctx, strPtr("B"), "https://b.example")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, id.String()))

	after := storage.Read(ctx)
	assert.Len(t, after.Profiles, 1)
	assert.NotContains(t, after.Profiles, id)
}

func TestDeleteProfile_AbsentIDIsNoOp(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()
	before := storage.Read(ctx)

	require.NoError(t, svc.DeleteProfile(ctx, uuid.NewString()))
	assert.Equal(t, before, storage.Read(ctx))
}

func TestDeleteProfile_RejectsActiveProfile(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()
	before := storage.Read(ctx)

	err := svc.DeleteProfile(ctx, before.CurrentProfileID.String())

	assert.ErrorIs(t, err, ErrProfileIsActive)
	assert.Equal(t, before, storage.Read(ctx))
}

func TestDeleteProfile_RejectsLandingPage(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()

	cfg := storage.Read(ctx)
	landingID := uuid.New()
	cfg.Profiles[landingID] = models.Profile{Name: "Landing", Action: models.FixedLandingPage()}
	require.NoError(t, storage.Replace(ctx, cfg))

	err := svc.DeleteProfile(ctx, landingID.String())

	assert.ErrorIs(t, err, ErrProfileNotDeletable)
	assert.Contains(t, storage.Read(ctx).Profiles, landingID)
}

func TestDeleteProfile_InvalidIdentifier(t *testing.T) {
	svc, _ := newFileBackedService(t, nil)

	assert.ErrorIs(t, svc.DeleteProfile(context.Background(), "nope"), ErrInvalidIdentifier)
}

// ─────────────────────────────────────────────
// ListProfiles
// ─────────────────────────────────────────────

func TestListProfiles_SortedByNameThenID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	high := uuid.MustParse("ffffffff-ffff-4fff-bfff-ffffffffffff")
	svc, storage := newFileBackedService(t, &sequenceIDs{ids: []uuid.UUID{high, low, uuid.New()}})
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, strPtr("Same"), "https://high.example")
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, strPtr("Same"), "https://low.example")
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, strPtr("Alpha"), "https://alpha.example")
	require.NoError(t, err)

	views, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, "Alpha", views[0].Name)
	assert.Equal(t, "Same", views[1].Name)
	assert.Equal(t, low, views[1].ID)
	assert.Equal(t, high, views[2].ID)
	assert.Equal(t, "https://a.example", views[3].Name)

	active := storage.Read(ctx).CurrentProfileID
	for _, v := range views {
		assert.Equal(t, v.ID == active, v.Active, v.Name)
	}
}

// ─────────────────────────────────────────────
// End-to-end scenario
// ─────────────────────────────────────────────

// TestProfileScenario walks through creating, activating and a malformed
// activation on a single-profile configuration.
func TestProfileScenario(t *testing.T) {
	svc, storage := newFileBackedService(t, nil)
	ctx := context.Background()
	p1 := storage.Read(ctx).CurrentProfileID

	p2, err := svc.CreateProfile(ctx, strPtr("B"), "https://b.example")
	require.NoError(t, err)

	cfg := storage.Read(ctx)
	assert.Len(t, cfg.Profiles, 2)
	assert.Equal(t, p1, cfg.CurrentProfileID)

	require.NoError(t, svc.ActivateProfile(ctx, p2.String()))
	action, err := svc.CurrentAction(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RedirectTo("https://b.example"), action)

	before := storage.Read(ctx)
	assert.ErrorIs(t, svc.ActivateProfile(ctx, "not-a-uuid"), ErrInvalidIdentifier)
	assert.Equal(t, before, storage.Read(ctx))

	_, err = svc.CreateProfile(ctx, nil, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, storage.Read(ctx))
}
