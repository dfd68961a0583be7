package service

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidIdentifier = errors.New("invalid profile identifier")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileIsActive     = errors.New("active profile cannot be deleted")
	ErrProfileNotDeletable = errors.New("profile cannot be deleted")

	// ErrInconsistentConfiguration means the active profile id does not
	// resolve. The store rejects such configurations, so seeing it points
	// at a bug rather than at bad input.
	ErrInconsistentConfiguration = errors.New("active profile is missing from the configuration")

	ErrUnauthorized              = errors.New("unauthorized")
	ErrAdminPasswordNotSpecified = errors.New("admin password is not specified")
	ErrVersionIsNotSpecified     = errors.New("app version is not specified")
)
