package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel narrows the console logger of armqrctl.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the armqr server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// AdminUser is the basic-auth user name sent with every admin request.
	AdminUser string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the admin API address, credentials and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view.
//
// overrides holds the values given as armqrctl command-line flags; its
// non-zero fields take precedence over environment variables, the settings
// file named by CONFIG and the built-in defaults, in that order.
func GetClientConfig(overrides ClientAdapter) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{Adapter: Adapter(overrides)}).
		withEnv().
		withSettingsFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AdminUser:      cfg.Adapter.AdminUser,
		},
	}

	return clientCfg, clientCfg.validate()
}
