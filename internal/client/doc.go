// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements armqrctl, the command-line admin client.
//
// It wires the cobra command tree, the admin API adapter and the keyring
// credential store into a single process lifecycle.
package client
