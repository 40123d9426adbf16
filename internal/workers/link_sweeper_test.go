package workers

import (
	"context"
	"testing"
	"time"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newExpiredCounter() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "links_expired_total"})
}

func TestLinkSweeper_DisabledReturnsImmediately(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		ctrl := gomock.NewController(t)
		links := mock.NewMockLinkService(ctrl)
		// no Sweep expectations: any call fails the test

		sweeper := NewLinkSweeper(links, newExpiredCounter(), interval, logger.Nop())

		done := make(chan struct{})
		go func() {
			sweeper.Run(context.Background())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("sweeper with interval %v did not return", interval)
		}
	}
}

func TestLinkSweeper_SweepsAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mock.NewMockLinkService(ctrl)
	expired := newExpiredCounter()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		links.EXPECT().Sweep(gomock.Any()).Return(3),
		links.EXPECT().Sweep(gomock.Any()).Return(0),
		links.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(context.Context) int {
			cancel()
			return 2
		}),
	)
	// a tick may already be buffered when the context is cancelled
	links.EXPECT().Sweep(gomock.Any()).Return(0).AnyTimes()

	sweeper := NewLinkSweeper(links, expired, time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}

	assert.Equal(t, float64(5), testutil.ToFloat64(expired))
}

func TestLinkSweeper_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mock.NewMockLinkService(ctrl)
	links.EXPECT().Sweep(gomock.Any()).Return(0).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sweeper := NewLinkSweeper(links, nil, time.Hour, logger.Nop())

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper ignored a cancelled context")
	}
}
