package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("http://localhost:8000", 5*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8000", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a", 0)
	b := NewHTTPClient("http://b", 0)

	assert.NotSame(t, a.Client, b.Client)
}

func TestHTTPClient_SendsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		assert.Equal(t, clientUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("1.0.0"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "1.0.0", resp.String())
}
