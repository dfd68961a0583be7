// Package config provides configuration loading, merging, and validation
// facilities for the armqr server and the armqrctl client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. Settings file (JSON, or YAML for .yaml/.yml paths)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for server configuration
// and [GetClientConfig] for client-specific configuration.
package config
