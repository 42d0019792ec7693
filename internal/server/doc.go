// Package server runs the movie finder HTTP server.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured timeout.
package server
