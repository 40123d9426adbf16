package service

import (
	"context"

	"github.com/isoron/habit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SyncServiceWrapper

// SyncService stores one versioned record per sync key under optimistic
// concurrency control.
type SyncService interface {
	// Register allocates a fresh key holding {0, ""}.
	Register(ctx context.Context) (string, error)
	Get(ctx context.Context, key string) (models.SyncData, error)
	// Put replaces the record if data.Version is the stored version plus
	// one, and fails with a *ConflictError otherwise.
	Put(ctx context.Context, key string, data models.SyncData) error
	GetVersion(ctx context.Context, key string) (int64, error)
}

// LinkService keeps short-lived aliases for sync keys.
type LinkService interface {
	Register(ctx context.Context, syncKey string) (models.Link, error)
	Get(ctx context.Context, id string) (models.Link, error)

	// Sweep removes every expired link and returns how many were removed.
	Sweep(ctx context.Context) int
	// Count returns the number of links held, expired or not.
	Count() int
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// metrics.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
