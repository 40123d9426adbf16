// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the habit-sync wire protocol.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the HTTP transport. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrEditConflict] for 409,
// [ErrKeyNotFound] for 404).
package adapter

import (
	"context"

	"github.com/isoron/habit-sync/models"
)

// ServerAdapter talks to a habit-sync server on behalf of one client.
type ServerAdapter interface {
	// Register asks the server for a fresh sync key.
	Register(ctx context.Context) (string, error)

	// GetData downloads the record stored under key.
	GetData(ctx context.Context, key string) (models.SyncData, error)

	// GetDataVersion fetches only the version of the record stored under key.
	GetDataVersion(ctx context.Context, key string) (int64, error)

	// Put uploads data under key. The server accepts it only when
	// data.Version is exactly one above the stored version; otherwise the
	// returned error is a *ConflictError carrying the server's record.
	Put(ctx context.Context, key string, data models.SyncData) error

	// RegisterLink creates a short-lived link that resolves to syncKey.
	RegisterLink(ctx context.Context, syncKey string) (models.Link, error)

	// GetLink resolves a link id created by RegisterLink.
	GetLink(ctx context.Context, id string) (models.Link, error)
}
