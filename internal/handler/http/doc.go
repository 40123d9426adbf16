// Package http implements the HTTP transport layer of the habit-sync server.
//
// It exposes route wiring, request handlers, and middleware for the sync
// wire protocol. Request tracing, access logging, metrics, and response
// compression are handled in this package before requests are delegated to
// the service layer; domain errors are translated to status codes by
// statusFromError.
package http
