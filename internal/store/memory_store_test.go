package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoron/habit-sync/models"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Contains(context.Background(), "nope"))
}

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "k1", models.SyncData{Version: 1, Content: "one"}))
	require.NoError(t, s.Put(ctx, "k1", models.SyncData{Version: 2, Content: "two"}))

	got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncData{Version: 2, Content: "two"}, got)
	assert.True(t, s.Contains(ctx, "k1"))
}

func TestMemoryStore_InstancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()

	require.NoError(t, a.Put(ctx, "shared", models.SyncData{Version: 1}))

	assert.True(t, a.Contains(ctx, "shared"))
	assert.False(t, b.Contains(ctx, "shared"))
}

func TestMemoryStore_ConcurrentDistinctKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			_ = s.Put(ctx, key, models.SyncData{Version: int64(i), Content: key})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.Version)
		assert.Equal(t, key, got.Content)
	}
}
