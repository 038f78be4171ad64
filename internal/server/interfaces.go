package server

import "context"

// Server defines the lifecycle of the journal server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails. A nil error
	// means a graceful stop.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
