// Package http implements the HTTP surface of the armqr server.
//
// The public entry point GET / either redirects visitors to the active
// profile's target or renders the built-in landing page. Everything under
// /admin and /api/admin sits behind HTTP basic auth: the former is a small
// server-rendered form UI, the latter a JSON API used by armqrctl.
// Request tracing, access logging and response compression are handled by
// middleware in this package before requests reach the service layer.
package http
