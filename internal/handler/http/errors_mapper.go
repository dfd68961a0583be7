package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-armqr/internal/app"
	"github.com/MKhiriev/go-armqr/internal/service"
	"github.com/MKhiriev/go-armqr/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:              http.StatusBadRequest,
	service.ErrInvalidIdentifier:         http.StatusBadRequest,
	service.ErrProfileNotFound:           http.StatusNotFound,
	service.ErrProfileIsActive:           http.StatusConflict,
	service.ErrProfileNotDeletable:       http.StatusConflict,
	service.ErrUnauthorized:              http.StatusUnauthorized,
	service.ErrInconsistentConfiguration: http.StatusInternalServerError,

	store.ErrInvalidConfiguration: http.StatusInternalServerError,
	store.ErrPersistenceFailure:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// error codes carried in the ?error= query of the admin page
const (
	formErrBadURI        = "bad_uri"
	formErrBadUUID       = "bad_uuid"
	formErrActiveProfile = "active_profile"
	formErrNotDeletable  = "not_deletable"
	formErrInternal      = "internal"
)

var errorFormCodeMap = map[error]string{
	service.ErrInvalidInput:        formErrBadURI,
	service.ErrInvalidIdentifier:   formErrBadUUID,
	service.ErrProfileNotFound:     formErrBadUUID,
	service.ErrProfileIsActive:     formErrActiveProfile,
	service.ErrProfileNotDeletable: formErrNotDeletable,
}

func formErrorCode(err error) string {
	for target, code := range errorFormCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return formErrInternal
}

var formErrorMessages = map[string]string{
	formErrBadURI:        app.MsgBadURI,
	formErrBadUUID:       app.MsgBadUUID,
	formErrActiveProfile: app.MsgActiveProfile,
	formErrNotDeletable:  app.MsgNotDeletable,
	formErrInternal:      app.MsgInternal,
}

func formErrorMessage(code string) string {
	if msg, ok := formErrorMessages[code]; ok {
		return msg
	}
	return app.MsgUnknown
}
