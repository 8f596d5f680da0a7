package builders

import (
	"context"
	"path"
	"strings"

	"go.trai.ch/keel/internal/adapters/fs" //nolint:depguard // Builders write through the filesystem adapter
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// ContentKind is the kind of builders copying content files.
const ContentKind = "content"

var (
	_ ports.Builder = (*ContentBuilder)(nil)
	_ Expander      = (*ContentBuilder)(nil)
)

// ContentBuilder copies the content source set of a project into target/<module>/.
// Paths inside the project's content directory are kept.
type ContentBuilder struct {
	project      *domain.Project
	fingerprints ports.SourceSetFingerprintFactory
	suiteRoot    ports.Directory
	targetRoot   ports.Directory
	logger       ports.Logger
	references   []ports.ProjectBuilderFactory
}

// NewContentBuilder creates a content builder for project. The project's references are
// expanded with the given factories and run before the copy.
func NewContentBuilder(
	project *domain.Project,
	fingerprints ports.SourceSetFingerprintFactory,
	suiteRoot ports.Directory,
	targetRoot ports.Directory,
	logger ports.Logger,
	references []ports.ProjectBuilderFactory,
) *ContentBuilder {
	return &ContentBuilder{
		project:      project,
		fingerprints: fingerprints,
		suiteRoot:    suiteRoot,
		targetRoot:   targetRoot,
		logger:       logger,
		references:   references,
	}
}

// Kind implements ports.Builder.
func (b *ContentBuilder) Kind() string { return ContentKind }

// UID implements ports.Builder.
func (b *ContentBuilder) UID() string { return b.project.String() }

// Identity implements ports.Builder.
func (b *ContentBuilder) Identity() string { return identity(ContentKind, b.UID()) }

// Dependencies implements ports.Builder.
func (b *ContentBuilder) Dependencies() domain.Dependencies {
	return fingerprint.FromSourceSet(b.fingerprints, b.project.SourceSet(domain.ContentSourceSet))
}

// String implements ports.Builder.
func (b *ContentBuilder) String() string { return "[" + b.project.String() + "/content]" }

// AddToContext implements ports.Builder.
func (b *ContentBuilder) AddToContext(bc ports.BuildContext) error {
	return register(bc, b, b)
}

// Expand implements Expander by registering a reference builder per declared reference.
func (b *ContentBuilder) Expand(bc ports.BuildContext) ([]ports.Builder, error) {
	refs := b.project.References()
	deps := make([]ports.Builder, 0, len(refs))
	for _, ref := range refs {
		rb, err := NewReference(b.project, ref, b.references)
		if err != nil {
			return nil, err
		}
		if err := rb.AddToContext(bc); err != nil {
			return nil, zerr.With(err, "project", b.project.String())
		}
		deps = append(deps, rb)
	}
	return deps, nil
}

// Run implements ports.Builder.
func (b *ContentBuilder) Run(_ context.Context, _ ports.BuildContext) (domain.TargetPathSet, error) {
	module := b.project.Module().Name()
	contentDir := path.Join(b.project.RootDir(), domain.ContentSourceSet)

	result := domain.NewTargetPathSet()
	for _, file := range b.project.SourceSet(domain.ContentSourceSet).Files() {
		rel := strings.TrimPrefix(file, contentDir+"/")
		if rel == file {
			err := zerr.Wrap(domain.ErrPathOutsideRoot, "content file outside of the content directory")
			return nil, zerr.With(zerr.With(err, "path", file), "project", b.project.String())
		}

		b.logger.Debug("copying content", "path", file)
		out := domain.NewTargetRelativePath(module, rel)
		if err := fs.CopyFile(b.suiteRoot, file, b.targetRoot, out.String()); err != nil {
			return nil, err
		}
		result.Add(out)
	}
	return result, nil
}
