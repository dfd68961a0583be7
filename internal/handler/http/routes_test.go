package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/service"
	"github.com/MKhiriev/go-armqr/internal/store"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInit_RoutesAreRegistered(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/admin"},
		{http.MethodPost, "/admin/profiles"},
		{http.MethodPost, "/admin/activateProfile"},
		{http.MethodPost, "/admin/deleteProfile"},
		{http.MethodGet, "/api/admin/profiles"},
		{http.MethodPost, "/api/admin/profiles"},
		{http.MethodPost, "/api/admin/profiles/" + uuid.NewString() + "/activate"},
		{http.MethodDelete, "/api/admin/profiles/" + uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.NotEqual(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/"},
		{http.MethodDelete, "/admin"},
		{http.MethodGet, "/admin/profiles"},
		{http.MethodPut, "/api/admin/profiles"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, withAdminAuth(httptest.NewRequest(tt.method, tt.path, nil)))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(nil)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)

	known := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, known)
	rr = serve(router, req)
	assert.Equal(t, known, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h := newTestHandler(nil)
	h.services.ProfileService = nil

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// newFileBackedRouter wires the real store and services on a temp state file.
func newFileBackedRouter(t *testing.T) (http.Handler, store.ConfigStorage) {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(config.Storage{Files: config.Files{
		StateFilePath:   filepath.Join(t.TempDir(), "armqr.json"),
		DefaultRedirect: "https://default.example",
	}}, log)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.StructuredConfig{App: config.App{
		AdminUser:         testAdminUser,
		AdminPasswordHash: string(hash),
		Version:           "1.0.0",
	}}
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), log)
	require.NoError(t, err)

	return NewHandler(services, log).Init(), storages.ConfigStorage
}

func TestAdminFlow_EndToEnd(t *testing.T) {
	router, storage := newFileBackedRouter(t)

	// fresh state redirects to the default target
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "https://default.example", rr.Header().Get("Location"))
	defaultID := storage.Read(t.Context()).CurrentProfileID

	// create through the form
	rr = serve(router, postForm("/admin/profiles", url.Values{"name": {"Blog"}, "redirect_uri": {"https://blog.example"}}))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/admin", rr.Header().Get("Location"))

	var blogID uuid.UUID
	for id, p := range storage.Read(t.Context()).Profiles {
		if p.Name == "Blog" {
			blogID = id
		}
	}
	require.NotEqual(t, uuid.Nil, blogID)

	// creating does not change the public target
	rr = serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "https://default.example", rr.Header().Get("Location"))

	// activate through the JSON API
	rr = serve(router, withAdminAuth(httptest.NewRequest(http.MethodPost, "/api/admin/profiles/"+blogID.String()+"/activate", nil)))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "https://blog.example", rr.Header().Get("Location"))

	// the active profile cannot be deleted
	rr = serve(router, postForm("/admin/deleteProfile", url.Values{"id": {blogID.String()}}))
	assert.Equal(t, "/admin?error=active_profile", rr.Header().Get("Location"))

	// the old one can
	rr = serve(router, withAdminAuth(httptest.NewRequest(http.MethodDelete, "/api/admin/profiles/"+defaultID.String(), nil)))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, withAdminAuth(httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)))
	require.Equal(t, http.StatusOK, rr.Code)
	var views []models.ProfileView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, blogID, views[0].ID)
	assert.True(t, views[0].Active)

	// bad input is reported on the admin page
	rr = serve(router, postForm("/admin/profiles", url.Values{"redirect_uri": {"   "}}))
	assert.Equal(t, "/admin?error=bad_uri", rr.Header().Get("Location"))

	rr = serve(router, postForm("/admin/activateProfile", url.Values{"id": {"not-a-uuid"}}))
	assert.Equal(t, "/admin?error=bad_uuid", rr.Header().Get("Location"))

	rr = serve(router, withAdminAuth(httptest.NewRequest(http.MethodGet, "/admin?error=bad_uuid", nil)))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "Blog"))
	assert.Contains(t, rr.Body.String(), formErrorMessages[formErrBadUUID])
}
