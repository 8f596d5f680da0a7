// Package metrics implements ports.Metrics with prometheus counters on a private registry.
package metrics

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "keel"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus records build counters.
type Prometheus struct {
	registry *prometheus.Registry

	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	stores   *prometheus.CounterVec
	builders *prometheus.CounterVec
	corrupt  prometheus.Counter
	restored prometheus.Counter
}

// New creates the counters and registers them on a new registry.
func New() *Prometheus {
	kind := []string{"kind"}
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Builders served from the build cache.",
		}, kind),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Builders that were not found in the build cache.",
		}, kind),
		stores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_stores_total",
			Help:      "Build outputs stored in the build cache.",
		}, kind),
		builders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builders_run_total",
			Help:      "Builders that were executed.",
		}, kind),
		corrupt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_corrupt_total",
			Help:      "Cache entries that could not be read.",
		}),
		restored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restored_files_total",
			Help:      "Files copied back from the build cache.",
		}),
	}

	m.registry.MustRegister(m.hits, m.misses, m.stores, m.builders, m.corrupt, m.restored)
	return m
}

// Registry returns the registry holding the counters.
func (m *Prometheus) Registry() *prometheus.Registry { return m.registry }

// CacheHit implements ports.Metrics.
func (m *Prometheus) CacheHit(kind string) { m.hits.WithLabelValues(kind).Inc() }

// CacheMiss implements ports.Metrics.
func (m *Prometheus) CacheMiss(kind string) { m.misses.WithLabelValues(kind).Inc() }

// CacheStored implements ports.Metrics.
func (m *Prometheus) CacheStored(kind string) { m.stores.WithLabelValues(kind).Inc() }

// CacheCorrupt implements ports.Metrics.
func (m *Prometheus) CacheCorrupt() { m.corrupt.Inc() }

// FilesRestored implements ports.Metrics.
func (m *Prometheus) FilesRestored(n int) {
	if n > 0 {
		m.restored.Add(float64(n))
	}
}

// BuilderRun implements ports.Metrics.
func (m *Prometheus) BuilderRun(kind string) { m.builders.WithLabelValues(kind).Inc() }

// Flush writes the counters to path in the text exposition format. An empty path does nothing.
func (m *Prometheus) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}
