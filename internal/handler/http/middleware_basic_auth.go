package http

import (
	"net/http"

	"github.com/MKhiriev/go-armqr/internal/logger"
)

const basicAuthRealm = "armqr"

// withBasicAuth guards the admin surface. Missing and wrong credentials are
// both answered with 401 and a fresh challenge so browsers prompt again.
func (h *Handler) withBasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok {
			logger.FromRequest(r).Debug().Msg("no basic auth credentials in request")
			requestCredentials(w)
			return
		}

		if err := h.services.AdminAuthService.Verify(r.Context(), user, password); err != nil {
			requestCredentials(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestCredentials(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+basicAuthRealm+`", charset="UTF-8"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
