// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shared by the admin page
// of the armqr server and the armqrctl client, so both describe the same
// failure in the same words.
package app

const (
	// MsgBadURI is shown when a redirect target is empty or cannot be parsed.
	MsgBadURI = "The redirect URI is empty or could not be parsed."

	// MsgBadUUID is shown when a profile id is malformed or unknown.
	MsgBadUUID = "That profile does not exist."

	// MsgActiveProfile is shown when deleting the active profile.
	MsgActiveProfile = "The active profile cannot be deleted. Activate another profile first."

	// MsgNotDeletable is shown when deleting the landing page profile.
	MsgNotDeletable = "This profile cannot be deleted."

	// MsgInternal is shown when the server could not persist a change.
	MsgInternal = "The change could not be saved. See the server log for details."

	MsgUnknown = "Something went wrong."

	// MsgUnauthorized is shown by armqrctl when the server rejects the
	// stored credentials.
	MsgUnauthorized = "The server rejected the admin credentials. Run 'armqrctl login' again."

	// MsgNotLoggedIn is shown by armqrctl before any login.
	MsgNotLoggedIn = "Not logged in. Run 'armqrctl login' first."
)
