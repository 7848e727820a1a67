package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
)

func TestSnapshotReflectsHTTPTraffic(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest("GET", "/courses", 200, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/courses", 200, 40*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.5)
}

func TestSnapshotReflectsStoreTraffic(t *testing.T) {
	m := NewMetricsService()
	adapter := store.NewAdapter(store.NewInstrumentedKV(store.NewMemoryKV(), m), nil, nil)
	courses := repository.NewCourseRepository(adapter)
	ctx := context.Background()

	require.NoError(t, courses.Create(ctx, &models.Course{Title: "Algebra"}))
	_, err := courses.List(ctx)
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.Positive(t, snap.StoreReads)
	assert.Positive(t, snap.StoreWrites)
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService

	m.ObserveHTTPRequest("GET", "/courses", 200, time.Millisecond)
	m.ObserveStoreRead(time.Millisecond)
	m.ObserveStoreWrite(time.Millisecond)

	assert.Equal(t, SystemMetrics{}, m.Snapshot())
}
