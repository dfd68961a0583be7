// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/models"
)

// serveCurrentAction is the public entry point printed on the QR code. It
// performs whatever the active profile says: a 303 to the redirect target or
// the landing page.
func (h *Handler) serveCurrentAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	action, err := h.services.ProfileService.CurrentAction(r.Context())
	if err != nil {
		log.Err(err).Msg("error resolving current action")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch action.Kind {
	case models.ActionRedirect:
		// the active profile may change at any time
		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, action.TargetURI, http.StatusSeeOther)
	case models.ActionFixedLandingPage:
		h.render(w, r, "landing.html", nil)
	default:
		log.Error().Str("kind", string(action.Kind)).Msg("active profile has an unknown action")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
