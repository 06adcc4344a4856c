// Package http implements the REST transport of the remote collection server.
//
// It wires the /api/projects and /api/version routes onto a chi router and
// wraps them with request tracing, access logging, prometheus metrics and
// gzip compression before delegating to the service layer.
package http
