package builders

import (
	"slices"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
)

var _ ports.ProjectBuilderFactory = (*ContentFactory)(nil)

// ContentFactory creates cached content builders for projects with content files.
type ContentFactory struct {
	fingerprints ports.SourceSetFingerprintFactory
	suiteRoot    ports.Directory
	targetRoot   ports.Directory
	cache        ports.BuildCache
	logger       ports.Logger
	metrics      ports.Metrics
	opts         []CachedOption
}

// NewContentFactory creates a content builder factory.
func NewContentFactory(
	fingerprints ports.SourceSetFingerprintFactory,
	suiteRoot ports.Directory,
	targetRoot ports.Directory,
	cache ports.BuildCache,
	logger ports.Logger,
	metrics ports.Metrics,
	opts ...CachedOption,
) *ContentFactory {
	return &ContentFactory{
		fingerprints: fingerprints,
		suiteRoot:    suiteRoot,
		targetRoot:   targetRoot,
		cache:        cache,
		logger:       logger,
		metrics:      metrics,
		opts:         opts,
	}
}

// Name implements ports.ProjectBuilderFactory.
func (f *ContentFactory) Name() string { return ContentKind }

// AddToContext implements ports.ProjectBuilderFactory. Several builders are merged into one;
// nil is returned when no project has content.
func (f *ContentFactory) AddToContext(bc ports.BuildContext, projects []*domain.Project) (ports.Builder, error) {
	var built []ports.Builder
	var ids []string
	for _, p := range projects {
		if !p.HasNonEmptySourceSet(domain.ContentSourceSet) {
			continue
		}
		cb := NewContentBuilder(p, f.fingerprints, f.suiteRoot, f.targetRoot, f.logger, []ports.ProjectBuilderFactory{f})
		b := NewCached(cb, f.cache, f.targetRoot, f.logger, f.metrics, f.opts...)
		if err := b.AddToContext(bc); err != nil {
			return nil, err
		}
		built = append(built, b)
		ids = append(ids, p.String())
	}

	switch len(built) {
	case 0:
		return nil, nil
	case 1:
		return built[0], nil
	}

	slices.Sort(ids)
	m := NewMergingBuilder(ContentKind+":"+strings.Join(ids, "+"), built)
	if err := m.AddToContext(bc); err != nil {
		return nil, err
	}
	return m, nil
}
