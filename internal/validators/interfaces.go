// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks admin input before the profile service acts on
// it. Rejections are sentinel errors from errors.go; the service wraps them
// in its own ErrInvalidInput so handlers only need one mapping.
package validators

import "context"

// Validator checks a single input value. Passing field names limits the
// check to those fields, which lets a caller validate a partially filled
// request (for example only FieldTargetURI while a form is being edited).
// An unknown field name is an error, not a silent pass.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
