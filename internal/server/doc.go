// Package server runs the armqr HTTP server: startup, signal handling and
// graceful shutdown bounded by the configured timeout.
package server
