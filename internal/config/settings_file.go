package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML settings
// files. Durations are written as strings ("30s") or as integer nanoseconds.
type StructuredFileConfig struct {
	// StateFilePath and AdminPassword are accepted at the top level for
	// deployment files written for earlier releases. Nested keys win.
	StateFilePath string `json:"state_file_path" yaml:"state_file_path"`
	AdminPassword string `json:"admin_password" yaml:"admin_password"`

	App struct {
		AdminUser         string `json:"admin_user" yaml:"admin_user"`
		AdminPassword     string `json:"admin_password" yaml:"admin_password"`
		AdminPasswordHash string `json:"admin_password_hash" yaml:"admin_password_hash"`
		Version           string `json:"version" yaml:"version"`
		LogLevel          string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Files struct {
			StateFilePath   string `json:"state_file_path" yaml:"state_file_path"`
			DefaultRedirect string `json:"default_redirect" yaml:"default_redirect"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		AdminUser      string   `json:"admin_user" yaml:"admin_user"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`
}

// parseSettingsFile decodes the settings file at path. Files ending in .yaml
// or .yml are decoded as YAML, everything else as JSON.
func parseSettingsFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a settings file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml settings: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json settings: %w", err)
		}
	}

	return fileCfg.structured(), nil
}

func (f *StructuredFileConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			AdminUser:         f.App.AdminUser,
			AdminPassword:     f.App.AdminPassword,
			AdminPasswordHash: f.App.AdminPasswordHash,
			Version:           f.App.Version,
			LogLevel:          f.App.LogLevel,
		},
		Storage: Storage{
			Files: Files{
				StateFilePath:   f.Storage.Files.StateFilePath,
				DefaultRedirect: f.Storage.Files.DefaultRedirect,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			AdminUser:      f.Adapter.AdminUser,
		},
	}

	if cfg.Storage.Files.StateFilePath == "" {
		cfg.Storage.Files.StateFilePath = f.StateFilePath
	}
	if cfg.App.AdminPassword == "" {
		cfg.App.AdminPassword = f.AdminPassword
	}

	return cfg
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var nanos int64
	if err := node.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
