package builders

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Cached)(nil)

// Cached wraps a builder so it only runs when its dependency fingerprint changed
// or the cache entry is missing.
type Cached struct {
	wrapped ports.Builder
	cache   ports.BuildCache
	target  ports.Directory
	logger  ports.Logger
	metrics ports.Metrics
	noCache bool
}

// CachedOption configures a Cached builder.
type CachedOption func(*Cached)

// WithNoCache skips the cache lookup. Fresh outputs are still stored.
func WithNoCache(noCache bool) CachedOption {
	return func(c *Cached) {
		c.noCache = noCache
	}
}

// NewCached wraps b. Outputs are restored to and stored from target.
func NewCached(
	b ports.Builder,
	cache ports.BuildCache,
	target ports.Directory,
	logger ports.Logger,
	metrics ports.Metrics,
	opts ...CachedOption,
) *Cached {
	c := &Cached{
		wrapped: b,
		cache:   cache,
		target:  target,
		logger:  logger,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Unwrap returns the wrapped builder.
func (c *Cached) Unwrap() ports.Builder { return c.wrapped }

// Kind implements ports.Builder.
func (c *Cached) Kind() string { return c.wrapped.Kind() }

// UID implements ports.Builder.
func (c *Cached) UID() string { return c.wrapped.UID() }

// Identity implements ports.Builder.
func (c *Cached) Identity() string { return c.wrapped.Identity() }

// Dependencies implements ports.Builder.
func (c *Cached) Dependencies() domain.Dependencies { return c.wrapped.Dependencies() }

// String implements ports.Builder.
func (c *Cached) String() string { return c.wrapped.String() }

// AddToContext registers the decorator in place of the wrapped builder, with the
// wrapped builder's prerequisites.
func (c *Cached) AddToContext(bc ports.BuildContext) error {
	e, _ := c.wrapped.(Expander)
	return register(bc, c, e)
}

// Run restores the cached outputs when the fingerprint matches, otherwise it runs the
// wrapped builder and stores its outputs.
func (c *Cached) Run(ctx context.Context, bc ports.BuildContext) (domain.TargetPathSet, error) {
	fp, err := c.wrapped.Dependencies().CreateFingerprint()
	if err != nil {
		return nil, zerr.With(err, "builder", c.String())
	}

	key := ports.BuildKeyOf(c.wrapped)
	if err := c.cache.LockForBuilder(ctx, key); err != nil {
		return nil, err
	}
	defer func() {
		if err := c.cache.UnlockForBuilder(key); err != nil {
			c.logger.Warn("failed to unlock cache entry", "key", key.String(), "error", err.Error())
		}
	}()

	if !c.noCache && c.cache.Contains(key, fp) {
		c.logger.Debug("restoring cached build outputs", "key", key.String())
		outputs, err := c.cache.Restore(key, c.target)
		if err != nil {
			return nil, err
		}
		if span, ok := ports.SpanFromContext(ctx); ok {
			span.MarkCached()
		}
		c.metrics.CacheHit(key.Kind)
		return outputs, nil
	}

	c.metrics.CacheMiss(key.Kind)
	c.logger.Debug("running builder", "key", key.String())
	outputs, err := c.wrapped.Run(ctx, bc)
	if err != nil {
		return nil, err
	}
	c.metrics.BuilderRun(key.Kind)

	c.logger.Debug("storing build outputs", "key", key.String(), "outputs", outputs.Len())
	if err := c.cache.Store(key, fp, outputs, c.target); err != nil {
		return nil, err
	}
	return outputs, nil
}
