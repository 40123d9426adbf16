package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/models"
)

func TestNewServices(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.Storage{}, logger.Nop())
	require.NoError(t, err)

	cfg := config.StructuredConfig{Links: config.Links{TTL: config.DefaultLinkTTL}}
	services := NewServices(storages, cfg, metrics.NewRegistry(), logger.Nop())
	require.NotNil(t, services.SyncService)
	require.NotNil(t, services.LinkService)

	k, err := services.SyncService.Register(ctx)
	require.NoError(t, err)
	require.NoError(t, services.SyncService.Put(ctx, k, models.SyncData{Version: 1, Content: "c"}))

	link, err := services.LinkService.Register(ctx, k)
	require.NoError(t, err)
	assert.Equal(t, k, link.SyncKey)
	assert.NotEqual(t, k, link.ID)
}
