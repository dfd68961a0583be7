package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/handler"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/internal/server"
	"github.com/MKhiriev/go-armqr/internal/service"
	"github.com/MKhiriev/go-armqr/internal/store"
	"github.com/MKhiriev/go-armqr/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("armqr %s\n", buildInfo)

	log := logger.NewLogger("armqr-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// credentials stay out of the log
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("state_file", cfg.Storage.Files.StateFilePath).
		Str("default_redirect", cfg.Storage.Files.DefaultRedirect).
		Str("admin_user", cfg.App.AdminUser).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
