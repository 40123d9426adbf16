// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/internal/utils"
	"github.com/isoron/habit-sync/models"
)

// MaxRegisterAttempts bounds how many candidate keys Register draws before
// giving up with ErrRegistrationUnavailable.
const MaxRegisterAttempts = 16

// syncService is the concrete implementation of SyncService on top of a
// single KeyedStore.
//
// The store does not compare versions, so every read-compare-write runs
// under the per-key lock from locks. Different keys never share a lock.
type syncService struct {
	store   store.KeyedStore
	keygen  utils.KeyGenerator
	limiter *rate.Limiter
	locks   *keyLocker

	logger *logger.Logger
}

// NewSyncService constructs a SyncService. When cfg.RegisterRate is
// positive, Register is throttled to that many calls per second with a
// burst of cfg.RegisterBurst.
func NewSyncService(st store.KeyedStore, keygen utils.KeyGenerator, cfg config.Server, logger *logger.Logger) SyncService {
	s := &syncService{
		store:  st,
		keygen: keygen,
		locks:  newKeyLocker(),
		logger: logger,
	}

	if cfg.RegisterRate > 0 {
		burst := cfg.RegisterBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RegisterRate), burst)
	}

	return s
}

// Register draws keys until one is not yet stored and claims it with
// {0, ""}. The existence check and the initial write happen under the
// candidate's lock, so two concurrent registrations can never claim the
// same key.
func (s *syncService) Register(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	if s.limiter != nil && !s.limiter.Allow() {
		log.Warn().Str("func", "*syncService.Register").Msg("registration throttled")
		return "", fmt.Errorf("%w: rate limit exceeded", ErrRegistrationUnavailable)
	}

	for attempt := 1; attempt <= MaxRegisterAttempts; attempt++ {
		key, err := s.keygen.Generate()
		if err != nil {
			log.Err(err).Str("func", "*syncService.Register").Msg("key generation failed")
			return "", fmt.Errorf("%w: %w", ErrRegistrationUnavailable, err)
		}

		claimed, err := s.claim(ctx, key)
		if err != nil {
			return "", err
		}
		if claimed {
			return key, nil
		}

		log.Warn().Str("func", "*syncService.Register").Int("attempt", attempt).Msg("generated key collides with an existing record")
	}

	log.Error().Str("func", "*syncService.Register").Int("attempts", MaxRegisterAttempts).Msg("no free key found")
	return "", fmt.Errorf("%w: no free key after %d attempts", ErrRegistrationUnavailable, MaxRegisterAttempts)
}

func (s *syncService) claim(ctx context.Context, key string) (bool, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	if s.store.Contains(ctx, key) {
		return false, nil
	}

	if err := s.store.Put(ctx, key, models.SyncData{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncService.claim").Msg("error storing initial record")
		return false, err
	}

	return true, nil
}

// Get reads the record under the key's read lock, so that a backend storing
// version and content separately is never observed halfway through a Put.
func (s *syncService) Get(ctx context.Context, key string) (models.SyncData, error) {
	unlock := s.locks.RLock(key)
	defer unlock()

	data, err := s.store.Get(ctx, key)
	if err != nil {
		return models.SyncData{}, mapStoreError(err)
	}

	return data, nil
}

// Put accepts data only if data.Version is exactly one above the stored
// version. A rejected write leaves the stored record untouched.
func (s *syncService) Put(ctx context.Context, key string, data models.SyncData) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	current, err := s.store.Get(ctx, key)
	if err != nil {
		return mapStoreError(err)
	}

	if data.Version != current.Version+1 {
		logger.FromContext(ctx).Debug().
			Str("func", "*syncService.Put").
			Int64("current_version", current.Version).
			Int64("submitted_version", data.Version).
			Msg("edit conflict")
		return &ConflictError{Current: current}
	}

	return s.store.Put(ctx, key, data)
}

func (s *syncService) GetVersion(ctx context.Context, key string) (int64, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	return data.Version, nil
}

// mapStoreError turns store lookups that cannot name a record into
// ErrKeyNotFound. Everything else is an I/O failure and passes through.
func mapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidKey) {
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}

	return err
}
