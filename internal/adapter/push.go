package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/isoron/habit-sync/models"
)

// MaxPushAttempts bounds the number of uploads PushWithRetry makes.
const MaxPushAttempts = 5

// RebaseFunc combines the record the server holds with the local content
// that was rejected, and returns the content to upload on top of current.
type RebaseFunc func(ctx context.Context, current models.SyncData, local string) (string, error)

// Overwrite is a RebaseFunc that discards the server's content and keeps
// the local one, so the last writer wins.
func Overwrite(_ context.Context, _ models.SyncData, local string) (string, error) {
	return local, nil
}

// PushWithRetry uploads content under key starting at version. Whenever the
// server reports a conflict, rebase merges the server's record into the
// local content and the result is uploaded as current.Version+1. A nil
// rebase behaves like Overwrite. It returns the version that was stored.
func PushWithRetry(ctx context.Context, server ServerAdapter, key string, version int64, content string, rebase RebaseFunc) (int64, error) {
	if rebase == nil {
		rebase = Overwrite
	}

	data := models.SyncData{Version: version, Content: content}

	var err error
	for attempt := 0; attempt < MaxPushAttempts; attempt++ {
		err = server.Put(ctx, key, data)
		if err == nil {
			return data.Version, nil
		}

		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			return 0, err
		}

		merged, rebaseErr := rebase(ctx, conflict.Current, data.Content)
		if rebaseErr != nil {
			return 0, fmt.Errorf("rebase onto version %d: %w", conflict.Current.Version, rebaseErr)
		}
		data = models.SyncData{Version: conflict.Current.Version + 1, Content: merged}
	}

	return 0, err
}
