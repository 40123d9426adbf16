// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, the background
// workers that live as long as the server, and graceful shutdown.
package server
