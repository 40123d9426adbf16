package store

import (
	"context"

	"github.com/isoron/habit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keyed_store_mock.go -package=mock

// KeyedStore is a durable mapping from an opaque key to a versioned record.
//
// Implementations must be safe for concurrent use. They do not compare
// versions: Put overwrites unconditionally, and callers that need
// compare-and-write semantics must serialise access per key themselves.
type KeyedStore interface {
	// Put stores data under key, replacing any previous record.
	Put(ctx context.Context, key string, data models.SyncData) error

	// Get returns the record stored under key, or an error wrapping
	// [ErrNotFound] if the key has never been put.
	Get(ctx context.Context, key string) (models.SyncData, error)

	// Contains reports whether a record exists under key. It never fails:
	// when existence cannot be determined it reports true, so that callers
	// never claim a key that may already be in use.
	Contains(ctx context.Context, key string) bool
}
