// Package http implements the REST API of the journal server.
//
// It wires chi routes for presets, the grid layout and journal cells, and
// the middleware that runs before every handler: request trace IDs, access
// logging, panic recovery, response compression and a per-request timeout.
// Service and store errors are translated to HTTP statuses by
// statusFromError.
package http
