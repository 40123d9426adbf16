package handler

import (
	"testing"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	// http.NewHandler only stores the services pointer, so nil is safe here.
	h, err := NewHandlers(nil, metrics.NewRegistry(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, metrics.NewRegistry(), config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
