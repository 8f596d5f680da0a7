package builders

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ModuleReferenceKind is the kind of builders resolving module://Project references.
	ModuleReferenceKind = "module-reference"
	// SuiteReferenceKind is the kind of builders resolving suite://Module/Project references.
	SuiteReferenceKind = "suite-reference"
)

var (
	_ ports.Builder = (*ReferenceBuilder)(nil)
	_ Expander      = (*ReferenceBuilder)(nil)
)

// ReferenceBuilder makes the artifact of a referenced project available to the referencing one.
// It expands into one builder per project builder factory and keeps the outputs named after
// the referenced project.
//
// Module and suite references resolving to the same project share an identity, so the
// referenced project is built once however it is spelled.
type ReferenceBuilder struct {
	kind      string
	module    *domain.Module
	ref       domain.Reference
	factories []ports.ProjectBuilderFactory
	resolve   func() (*domain.Project, error)

	mu   sync.RWMutex
	subs []ports.Builder
}

// NewReference creates the reference builder matching the scheme of ref.
func NewReference(
	project *domain.Project,
	ref domain.Reference,
	factories []ports.ProjectBuilderFactory,
) (*ReferenceBuilder, error) {
	switch ref.Scheme {
	case domain.SchemeModule:
		return NewModuleReference(project, ref, factories), nil
	case domain.SchemeSuite:
		return NewSuiteReference(project, ref, factories), nil
	default:
		err := zerr.Wrap(domain.ErrInvalidReference, "unsupported reference scheme")
		return nil, zerr.With(err, "reference", ref.String())
	}
}

// NewModuleReference creates a builder resolving ref inside the module of project.
// Test projects of the module are considered after regular projects.
func NewModuleReference(
	project *domain.Project,
	ref domain.Reference,
	factories []ports.ProjectBuilderFactory,
) *ReferenceBuilder {
	r := &ReferenceBuilder{
		kind:      ModuleReferenceKind,
		module:    project.Module(),
		ref:       ref,
		factories: factories,
	}
	r.resolve = sync.OnceValues(func() (*domain.Project, error) {
		if p, ok := r.module.LookupProjectOrTestProject(ref.Project); ok {
			return p, nil
		}
		return nil, r.invalid(r.module.Name(), "module has no such project")
	})
	return r
}

// NewSuiteReference creates a builder resolving ref across the suite of project.
func NewSuiteReference(
	project *domain.Project,
	ref domain.Reference,
	factories []ports.ProjectBuilderFactory,
) *ReferenceBuilder {
	r := &ReferenceBuilder{
		kind:      SuiteReferenceKind,
		module:    project.Module(),
		ref:       ref,
		factories: factories,
	}
	r.resolve = sync.OnceValues(func() (*domain.Project, error) {
		module, ok := r.module.Suite().LookupModule(ref.Module)
		if !ok {
			return nil, r.invalid(ref.Module, "suite has no such module")
		}
		if p, ok := module.LookupProject(ref.Project); ok {
			return p, nil
		}
		return nil, r.invalid(ref.Module, "module has no such project")
	})
	return r
}

func (r *ReferenceBuilder) invalid(module, reason string) error {
	err := zerr.Wrap(domain.ErrInvalidReference, reason)
	err = zerr.With(err, "reference", r.ref.String())
	err = zerr.With(err, "module", module)
	return zerr.With(err, "project", r.ref.Project)
}

// Resolve returns the referenced project. The lookup runs once.
func (r *ReferenceBuilder) Resolve() (*domain.Project, error) {
	return r.resolve()
}

// Reference returns the reference being resolved.
func (r *ReferenceBuilder) Reference() domain.Reference { return r.ref }

// Kind implements ports.Builder.
func (r *ReferenceBuilder) Kind() string { return r.kind }

// UID implements ports.Builder.
func (r *ReferenceBuilder) UID() string {
	if r.ref.Scheme == domain.SchemeSuite {
		return r.ref.Module + "." + r.ref.Project
	}
	return r.module.Name() + "." + r.ref.Project
}

// Identity implements ports.Builder. It is derived from the resolved project when
// resolution succeeds.
func (r *ReferenceBuilder) Identity() string {
	target, err := r.resolve()
	if err != nil {
		return identity(r.kind, r.UID())
	}
	return "reference:" + strings.ToLower(target.Module().Name()) + "/" + strings.ToLower(target.Name())
}

// Dependencies implements ports.Builder.
func (r *ReferenceBuilder) Dependencies() domain.Dependencies {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return combinedDependencies(r.subs)
}

// String implements ports.Builder.
func (r *ReferenceBuilder) String() string { return "[" + r.ref.String() + "]" }

// AddToContext implements ports.Builder. An unresolvable reference fails here.
func (r *ReferenceBuilder) AddToContext(bc ports.BuildContext) error {
	if _, err := r.resolve(); err != nil {
		return err
	}
	if err := register(bc, r, r); err != nil {
		return err
	}

	r.mu.Lock()
	r.subs = bc.Dependencies(r)
	r.mu.Unlock()
	return nil
}

// Expand implements Expander. Each factory contributes at most one builder.
func (r *ReferenceBuilder) Expand(bc ports.BuildContext) ([]ports.Builder, error) {
	target, err := r.resolve()
	if err != nil {
		return nil, err
	}

	var subs []ports.Builder
	for _, f := range r.factories {
		b, err := f.AddToContext(bc, []*domain.Project{target})
		if err != nil {
			return nil, zerr.With(err, "reference", r.ref.String())
		}
		if b != nil {
			subs = append(subs, b)
		}
	}
	return subs, nil
}

// Run implements ports.Builder. It keeps the outputs whose file name without extension
// equals the referenced project name, ignoring case.
func (r *ReferenceBuilder) Run(_ context.Context, bc ports.BuildContext) (domain.TargetPathSet, error) {
	target, err := r.resolve()
	if err != nil {
		return nil, err
	}

	all, err := unionResults(bc, bc.Dependencies(r))
	if err != nil {
		return nil, err
	}

	result := domain.NewTargetPathSet()
	for p := range all {
		if strings.EqualFold(p.FileNameWithoutExtension(), target.Name()) {
			result.Add(p)
		}
	}
	return result, nil
}
