package service

import (
	"context"
	"errors"

	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/models"
)

// SyncMetricsService counts SyncService calls by operation and outcome.
type SyncMetricsService struct {
	inner   SyncService
	metrics *metrics.Registry
}

func NewSyncMetricsService(registry *metrics.Registry) SyncServiceWrapper {
	return &SyncMetricsService{metrics: registry}
}

func (m *SyncMetricsService) Wrap(inner SyncService) SyncService {
	m.inner = inner
	return m
}

func (m *SyncMetricsService) Register(ctx context.Context) (string, error) {
	key, err := m.inner.Register(ctx)
	m.observe("register", err)
	return key, err
}

func (m *SyncMetricsService) Get(ctx context.Context, key string) (models.SyncData, error) {
	data, err := m.inner.Get(ctx, key)
	m.observe("get", err)
	return data, err
}

func (m *SyncMetricsService) Put(ctx context.Context, key string, data models.SyncData) error {
	err := m.inner.Put(ctx, key, data)
	m.observe("put", err)
	return err
}

func (m *SyncMetricsService) GetVersion(ctx context.Context, key string) (int64, error) {
	version, err := m.inner.GetVersion(ctx, key)
	m.observe("get_version", err)
	return version, err
}

func (m *SyncMetricsService) observe(operation string, err error) {
	m.metrics.SyncOperations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrKeyNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrEditConflict):
		return metrics.ResultConflict
	case errors.Is(err, ErrRegistrationUnavailable):
		return metrics.ResultUnavailable
	default:
		return metrics.ResultError
	}
}
