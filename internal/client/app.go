package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-armqr/internal/adapter"
	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/credentials"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"github.com/MKhiriev/go-armqr/models"
)

const defaultClientLogLevel = "warn"

type (
	configLoader   func(overrides config.ClientAdapter) (*config.ClientConfig, error)
	adapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.AdminAdapter, error)
)

type App struct {
	build       models.AppBuildInfo
	credentials credentials.Store

	loadConfig configLoader
	newAdapter adapterFactory

	out    io.Writer
	errOut io.Writer

	// resolved per invocation by the root command
	cfg     *config.ClientConfig
	adapter adapter.AdminAdapter
	logger  *logger.Logger
}

func NewApp(build models.AppBuildInfo, store credentials.Store, out, errOut io.Writer) *App {
	return &App{
		build:       build,
		credentials: store,
		loadConfig:  config.GetClientConfig,
		newAdapter:  adapter.NewHTTPAdminAdapter,
		out:         out,
		errOut:      errOut,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.errOut, colorError("Error:"), describeError(err))
		return err
	}
	return nil
}

// setup resolves the config and builds the adapter once the global flags
// are known.
func (a *App) setup(overrides config.ClientAdapter) error {
	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	a.logger = logger.NewConsoleLogger("armqrctl", a.errOut)
	level := cfg.App.LogLevel
	if level == "" {
		level = defaultClientLogLevel
	}
	if err = a.logger.SetLevel(level); err != nil {
		return err
	}

	a.adapter, err = a.newAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("error creating admin adapter: %w", err)
	}

	a.cfg = cfg
	return nil
}

// authenticate loads the stored credentials for the configured server.
func (a *App) authenticate() error {
	creds, err := a.credentials.Load(a.cfg.Adapter.HTTPAddress)
	if err != nil {
		return err
	}

	a.adapter.SetCredentials(creds.User, creds.Password)
	return nil
}
