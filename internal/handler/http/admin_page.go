package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/models"
)

const (
	adminPagePath = "/admin"

	formFieldName        = "name"
	formFieldRedirectURI = "redirect_uri"
	formFieldID          = "id"
)

type adminPageData struct {
	Profiles []models.ProfileView
	Error    string
}

func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing profiles for admin page")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	data := adminPageData{Profiles: profiles}
	if code := r.URL.Query().Get("error"); code != "" {
		data.Error = formErrorMessage(code)
	}

	h.render(w, r, "admin.html", data)
}

func (h *Handler) createProfileForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectToAdmin(w, r, formErrBadURI)
		return
	}

	// an absent field and an empty one both fall back to the derived name
	var name *string
	if values, ok := r.PostForm[formFieldName]; ok && len(values) > 0 {
		name = &values[0]
	}

	_, err := h.services.ProfileService.CreateProfile(r.Context(), name, r.PostForm.Get(formFieldRedirectURI))
	h.finishForm(w, r, err, "error creating profile")
}

func (h *Handler) activateProfileForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectToAdmin(w, r, formErrBadUUID)
		return
	}

	err := h.services.ProfileService.ActivateProfile(r.Context(), r.PostForm.Get(formFieldID))
	h.finishForm(w, r, err, "error activating profile")
}

func (h *Handler) deleteProfileForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectToAdmin(w, r, formErrBadUUID)
		return
	}

	err := h.services.ProfileService.DeleteProfile(r.Context(), r.PostForm.Get(formFieldID))
	h.finishForm(w, r, err, "error deleting profile")
}

// finishForm answers a form post with a 303 back to the admin page, carrying
// an error code when the operation failed.
func (h *Handler) finishForm(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if err == nil {
		redirectToAdmin(w, r, "")
		return
	}

	code := formErrorCode(err)
	if code == formErrInternal {
		logger.FromRequest(r).Err(err).Msg(msg)
	} else {
		logger.FromRequest(r).Warn().Err(err).Str("code", code).Msg(msg)
	}

	redirectToAdmin(w, r, code)
}

func redirectToAdmin(w http.ResponseWriter, r *http.Request, code string) {
	target := adminPagePath
	if code != "" {
		target += "?" + url.Values{"error": {code}}.Encode()
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
