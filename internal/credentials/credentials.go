// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials keeps armqrctl admin credentials in the operating
// system keyring, one entry per server address.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "armqrctl"

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrEmptyServer = errors.New("server address is empty")
)

// Credentials is one admin account for one server.
type Credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

//go:generate mockgen -source=credentials.go -destination=../mock/credentials_store_mock.go -package=mock

// Store persists credentials keyed by server address.
type Store interface {
	Save(server string, creds Credentials) error
	Load(server string) (Credentials, error)
	Delete(server string) error
}

type keyringStore struct{}

// NewKeyringStore returns a Store backed by the OS keyring (Keychain,
// Secret Service or Windows Credential Manager).
func NewKeyringStore() Store {
	return keyringStore{}
}

func (keyringStore) Save(server string, creds Credentials) error {
	key, err := entryKey(server)
	if err != nil {
		return err
	}

	secret, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("error encoding credentials: %w", err)
	}

	if err = keyring.Set(keyringService, key, string(secret)); err != nil {
		return fmt.Errorf("error saving credentials to keyring: %w", err)
	}
	return nil
}

// Load returns ErrNotLoggedIn when no entry exists for server.
func (keyringStore) Load(server string) (Credentials, error) {
	key, err := entryKey(server)
	if err != nil {
		return Credentials{}, err
	}

	secret, err := keyring.Get(keyringService, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return Credentials{}, fmt.Errorf("%w to %s", ErrNotLoggedIn, key)
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("error reading credentials from keyring: %w", err)
	}

	var creds Credentials
	if err = json.Unmarshal([]byte(secret), &creds); err != nil {
		return Credentials{}, fmt.Errorf("error decoding credentials: %w", err)
	}
	return creds, nil
}

// Delete is a no-op when no entry exists.
func (keyringStore) Delete(server string) error {
	key, err := entryKey(server)
	if err != nil {
		return err
	}

	err = keyring.Delete(keyringService, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("error deleting credentials from keyring: %w", err)
	}
	return nil
}

func entryKey(server string) (string, error) {
	key := strings.TrimRight(strings.TrimSpace(server), "/")
	if key == "" {
		return "", ErrEmptyServer
	}
	return key, nil
}
