package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-armqr/internal/logger"
)

// render executes the named template into a buffer first so a template error
// still produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
