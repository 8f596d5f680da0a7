package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/metrics"
	"go.trai.ch/keel/internal/core/domain"
)

func record(m *metrics.Prometheus) {
	m.CacheHit("content")
	m.CacheHit("content")
	m.CacheMiss("content")
	m.CacheMiss("merge")
	m.CacheStored("content")
	m.BuilderRun("content")
	m.CacheCorrupt()
	m.FilesRestored(3)
	m.FilesRestored(0)
}

func TestPrometheus_Counters(t *testing.T) {
	m := metrics.New()
	record(m)

	expected := `
# HELP keel_cache_hits_total Builders served from the build cache.
# TYPE keel_cache_hits_total counter
keel_cache_hits_total{kind="content"} 2
# HELP keel_cache_misses_total Builders that were not found in the build cache.
# TYPE keel_cache_misses_total counter
keel_cache_misses_total{kind="content"} 1
keel_cache_misses_total{kind="merge"} 1
# HELP keel_cache_corrupt_total Cache entries that could not be read.
# TYPE keel_cache_corrupt_total counter
keel_cache_corrupt_total 1
# HELP keel_restored_files_total Files copied back from the build cache.
# TYPE keel_restored_files_total counter
keel_restored_files_total 3
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"keel_cache_hits_total", "keel_cache_misses_total", "keel_cache_corrupt_total", "keel_restored_files_total")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestPrometheus_Flush(t *testing.T) {
	m := metrics.New()
	record(m)

	require.NoError(t, m.Flush(""), "an empty path disables the dump")

	path := filepath.Join(t.TempDir(), ".keel", "metrics.prom")
	require.NoError(t, m.Flush(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `keel_builders_run_total{kind="content"} 1`)
	assert.Contains(t, string(data), `keel_cache_stores_total{kind="content"} 1`)
}

func TestPrometheus_FlushFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := metrics.New().Flush(filepath.Join(blocker, "metrics.prom"))
	require.ErrorIs(t, err, domain.ErrMetricsWriteFailed)
}
