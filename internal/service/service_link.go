package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/utils"
	"github.com/isoron/habit-sync/models"
)

// linkService keeps links in a map owned by the instance. Links are never
// updated; an expired link is removed on the next Get or Sweep.
type linkService struct {
	mu    sync.Mutex
	links map[string]models.Link

	ttl    time.Duration
	keygen utils.KeyGenerator
	now    func() time.Time

	logger *logger.Logger
}

// NewLinkService constructs a LinkService whose links live for cfg.TTL.
func NewLinkService(keygen utils.KeyGenerator, cfg config.Links, logger *logger.Logger) LinkService {
	return newLinkService(keygen, cfg.TTL, time.Now, logger)
}

func newLinkService(keygen utils.KeyGenerator, ttl time.Duration, now func() time.Time, logger *logger.Logger) *linkService {
	return &linkService{
		links:  make(map[string]models.Link),
		ttl:    ttl,
		keygen: keygen,
		now:    now,
		logger: logger,
	}
}

// Register stores a new link to syncKey. The sync key is not looked up:
// links and records live in separate namespaces.
func (l *linkService) Register(ctx context.Context, syncKey string) (models.Link, error) {
	log := logger.FromContext(ctx)

	if syncKey == "" {
		return models.Link{}, ErrEmptySyncKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for attempt := 1; attempt <= MaxRegisterAttempts; attempt++ {
		id, err := l.keygen.Generate()
		if err != nil {
			log.Err(err).Str("func", "*linkService.Register").Msg("link id generation failed")
			return models.Link{}, fmt.Errorf("%w: %w", ErrRegistrationUnavailable, err)
		}

		if _, taken := l.links[id]; taken {
			log.Warn().Str("func", "*linkService.Register").Int("attempt", attempt).Msg("generated link id collides")
			continue
		}

		// createdAt travels as unix milliseconds; drop the rest so the
		// stored value equals what clients see.
		link := models.Link{
			ID:        id,
			SyncKey:   syncKey,
			CreatedAt: time.UnixMilli(l.now().UnixMilli()),
		}
		l.links[id] = link

		return link, nil
	}

	log.Error().Str("func", "*linkService.Register").Int("attempts", MaxRegisterAttempts).Msg("no free link id found")
	return models.Link{}, fmt.Errorf("%w: no free link id after %d attempts", ErrRegistrationUnavailable, MaxRegisterAttempts)
}

// Get returns the link with the given id. Unknown and expired ids are both
// reported as ErrKeyNotFound; an expired link is evicted.
func (l *linkService) Get(ctx context.Context, id string) (models.Link, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	link, ok := l.links[id]
	if !ok {
		return models.Link{}, ErrKeyNotFound
	}

	if l.expired(link, l.now()) {
		delete(l.links, id)
		logger.FromContext(ctx).Debug().Str("func", "*linkService.Get").Msg("evicted expired link")
		return models.Link{}, ErrKeyNotFound
	}

	return link, nil
}

func (l *linkService) Sweep(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, link := range l.links {
		if l.expired(link, now) {
			delete(l.links, id)
			removed++
		}
	}

	if removed > 0 {
		logger.FromContext(ctx).Debug().Str("func", "*linkService.Sweep").Int("removed", removed).Msg("swept expired links")
	}

	return removed
}

func (l *linkService) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.links)
}

func (l *linkService) expired(link models.Link, now time.Time) bool {
	return now.Sub(link.CreatedAt) > l.ttl
}
