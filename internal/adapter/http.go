package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/utils"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	profilesPath = "/api/admin/profiles"
	versionPath  = "/api/version/"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs the resty implementation of [AdminAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http.
func NewHTTPAdminAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("admin API call")
		return nil
	})

	return &httpAdminAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminAdapter) SetCredentials(user, password string) {
	h.client.SetBasicAuth(user, password)
}

func (h *httpAdminAdapter) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	var profiles []models.ProfileView

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profiles).
		Get(profilesPath)
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (h *httpAdminAdapter) CreateProfile(ctx context.Context, req models.NewProfileRequest) (uuid.UUID, error) {
	var created models.NewProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post(profilesPath)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return uuid.Nil, err
	}

	return created.ID, nil
}

func (h *httpAdminAdapter) ActivateProfile(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strings.TrimSpace(id)).
		Post(profilesPath + "/{id}/activate")
	if err != nil {
		return fmt.Errorf("activate profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAdapter) DeleteProfile(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strings.TrimSpace(id)).
		Delete(profilesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
