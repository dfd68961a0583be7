package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.GetHead)
	router.Use(h.withTraceID, h.withLogging)

	// public routes
	router.Get("/", h.serveCurrentAction)
	router.Get("/api/version/", h.getServerVersion)

	// admin form UI
	router.Group(func(r chi.Router) {
		r.Use(h.withBasicAuth)
		r.Get("/admin", h.adminPage)
		r.Post("/admin/profiles", h.createProfileForm)
		r.Post("/admin/activateProfile", h.activateProfileForm)
		r.Post("/admin/deleteProfile", h.deleteProfileForm)
	})

	// admin JSON API
	router.Group(func(r chi.Router) {
		r.Use(h.withBasicAuth, withGZip)
		r.Get("/api/admin/profiles", h.listProfiles)
		r.Post("/api/admin/profiles", h.createProfile)
		r.Post("/api/admin/profiles/{id}/activate", h.activateProfile)
		r.Delete("/api/admin/profiles/{id}", h.deleteProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
