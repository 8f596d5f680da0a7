package ports

// Metrics records build counters.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit counts a builder served from the cache.
	CacheHit(kind string)
	// CacheMiss counts a builder that had to run.
	CacheMiss(kind string)
	// CacheStored counts a successful store.
	CacheStored(kind string)
	// CacheCorrupt counts an unreadable cache entry.
	CacheCorrupt()
	// FilesRestored counts files copied back from the cache.
	FilesRestored(n int)
	// BuilderRun counts an executed builder.
	BuilderRun(kind string)
	// Flush writes the counters to the file at path in the Prometheus text format.
	Flush(path string) error
}
