package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags in args (without the
// program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f state file path
//	-c/-config settings file path (JSON or YAML)
//	-admin-user admin user name
//	-admin-password admin password
//	-admin-password-hash bcrypt hash of the admin password
//	-default-redirect target seeded into a fresh state file
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-log-level log level (e.g., "info")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var stateFilePath string
	var defaultRedirect string
	var settingsPath string
	var adminUser string
	var adminPassword string
	var adminPasswordHash string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("armqr", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&stateFilePath, "f", "", "State file path")
	fs.StringVar(&settingsPath, "c", "", "Settings file path (JSON or YAML)")
	fs.StringVar(&settingsPath, "config", "", "Settings file path (alias)")
	fs.StringVar(&adminUser, "admin-user", "", "Admin user name")
	fs.StringVar(&adminPassword, "admin-password", "", "Admin password")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Bcrypt hash of the admin password")
	fs.StringVar(&defaultRedirect, "default-redirect", "", "Redirect target seeded into a fresh state file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AdminUser:         adminUser,
			AdminPassword:     adminPassword,
			AdminPasswordHash: adminPasswordHash,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			Files: Files{
				StateFilePath:   stateFilePath,
				DefaultRedirect: defaultRedirect,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		SettingsFilePath: settingsPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
