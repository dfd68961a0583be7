// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// adminAuthService is the concrete implementation of AdminAuthService.
// It holds a single admin account: a user name and a bcrypt hash.
type adminAuthService struct {
	user         string
	passwordHash []byte

	logger *logger.Logger
}

// NewAdminAuthService builds the admin credential check from cfg.
//
// A configured AdminPasswordHash is used as is. Otherwise the plaintext
// AdminPassword is hashed once here, so only the hash stays in memory.
func NewAdminAuthService(cfg config.App, logger *logger.Logger) (AdminAuthService, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "" {
			return nil, ErrAdminPasswordNotSpecified
		}

		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing admin password: %w", err)
		}
	}

	return &adminAuthService{
		user:         cfg.AdminUser,
		passwordHash: hash,
		logger:       logger,
	}, nil
}

// Verify returns ErrUnauthorized unless user and password match the
// configured admin account. The password hash is checked even for an unknown
// user name so both failures take the same time.
func (s *adminAuthService) Verify(ctx context.Context, user, password string) error {
	userMatches := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !userMatches || passwordErr != nil {
		logger.FromContext(ctx).Warn().Str("user", user).Msg("admin authentication failed")
		return ErrUnauthorized
	}

	return nil
}
