package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTargetURI   = errors.New("target URI is required")
	ErrInvalidTargetURI = errors.New("invalid target URI")
	ErrNameTooLong      = errors.New("profile name is too long")
)
