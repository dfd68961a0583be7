// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the handlers or the listen address are
	// missing, so the process has nothing to run.
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrAddressInUse is returned by RunServer when the listen address
	// cannot be bound, typically because another process holds the port.
	ErrAddressInUse = errors.New("cannot bind HTTP address")
)
