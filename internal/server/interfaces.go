package server

import "context"

// Server defines the lifecycle contract of the movie finder server.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer() error

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error
}
