package ports

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// Builder is a single step of the build graph.
type Builder interface {
	// Kind returns the logical builder type. It is the first half of the builder's BuildKey.
	Kind() string
	// UID returns an identifier that is stable across runs within Kind.
	UID() string
	// Identity returns the key used to deduplicate equal builders in a build context.
	Identity() string
	// Dependencies describes the inputs whose change invalidates the builder's outputs.
	Dependencies() domain.Dependencies
	// AddToContext registers the builder and, transitively, its dependencies.
	AddToContext(bc BuildContext) error
	// Run executes the builder and returns the produced target relative paths.
	Run(ctx context.Context, bc BuildContext) (domain.TargetPathSet, error)
	// String returns a human readable label.
	String() string
}

// BuildContext is the per-run graph of registered builders and their results.
type BuildContext interface {
	// AddBuilder registers b with the given dependencies unless an equal builder is registered.
	AddBuilder(b Builder, deps []Builder) error
	// Register claims the node for b and calls expand to produce its dependencies.
	// Nested registrations made by expand go through the context it is given.
	// For an already registered equal builder expand is not called; the call returns
	// once that builder's dependencies are recorded.
	Register(b Builder, expand func(bc BuildContext) ([]Builder, error)) error
	// Contains reports whether an equal builder is registered.
	Contains(b Builder) bool
	// Dependencies returns the dependencies recorded for the builder equal to b.
	Dependencies(b Builder) []Builder
	// Results returns the outputs of the builder equal to b.
	Results(b Builder) (domain.TargetPathSet, error)
	// SetResults records the outputs of the builder equal to b.
	SetResults(b Builder, results domain.TargetPathSet) error
}

// ProjectBuilderFactory creates the builder producing the artifacts of a set of projects.
type ProjectBuilderFactory interface {
	// Name identifies the factory in builder ids.
	Name() string
	// AddToContext registers a builder for projects. It returns nil when there is nothing to build.
	AddToContext(bc BuildContext, projects []*domain.Project) (Builder, error)
}

// BuildKeyOf returns the cache key of b.
func BuildKeyOf(b Builder) domain.BuildKey {
	return domain.NewBuildKey(b.Kind(), b.UID())
}
