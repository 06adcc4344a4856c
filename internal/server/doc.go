// Package server runs the remote collection HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a drain timeout.
package server
