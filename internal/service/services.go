package service

import (
	"fmt"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/store"
	"github.com/MKhiriev/go-armqr/internal/utils"
	"github.com/MKhiriev/go-armqr/models"
)

type Services struct {
	ProfileService   ProfileService
	AppInfoService   AppInfoService
	AdminAuthService AdminAuthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	adminAuthService, err := NewAdminAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating admin auth service: %w", err)
	}

	profileService := NewProfileValidationService().
		Wrap(NewProfileService(storages.ConfigStorage, utils.NewUUIDGenerator(), logger))

	return &Services{
		ProfileService:   profileService,
		AppInfoService:   appInfoService,
		AdminAuthService: adminAuthService,
	}, nil
}
