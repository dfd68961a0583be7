package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-armqr/internal/client"
	"github.com/MKhiriev/go-armqr/internal/credentials"
	"github.com/MKhiriev/go-armqr/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		credentials.NewKeyringStore(),
		os.Stdout,
		os.Stderr,
	)

	// the error has already been printed
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
