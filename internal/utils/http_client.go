package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const clientUserAgent = "armqrctl"

// HTTPClient embeds *resty.Client so callers use the resty request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that expects JSON answers.
// A zero timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", clientUserAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
