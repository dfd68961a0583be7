// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/utils"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/go-chi/chi/v5"
)

const profileIDParam = "id"

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing profiles")
		return
	}

	if _, err = utils.WriteJSON(w, profiles, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profiles response")
	}
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NewProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	id, err := h.services.ProfileService.CreateProfile(r.Context(), request.Name, request.TargetURI)
	if err != nil {
		h.writeError(w, r, err, "error creating profile")
		return
	}

	w.Header().Set("Location", "/api/admin/profiles/"+id.String())
	if _, err = utils.WriteJSON(w, models.NewProfileResponse{ID: id}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing create profile response")
	}
}

func (h *Handler) activateProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileService.ActivateProfile(r.Context(), chi.URLParam(r, profileIDParam)); err != nil {
		h.writeError(w, r, err, "error activating profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileService.DeleteProfile(r.Context(), chi.URLParam(r, profileIDParam)); err != nil {
		h.writeError(w, r, err, "error deleting profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps err to a status code. Client errors carry the error text,
// server errors only the status text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
