package builders_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/engine/buildctx"
)

// stubBuilder registers itself without prerequisites and returns fixed outputs.
type stubBuilder struct {
	uid     string
	outputs domain.TargetPathSet
}

func (b *stubBuilder) Kind() string                      { return "stub" }
func (b *stubBuilder) UID() string                       { return b.uid }
func (b *stubBuilder) Identity() string                  { return "stub:" + b.uid }
func (b *stubBuilder) Dependencies() domain.Dependencies { return fingerprint.None() }
func (b *stubBuilder) String() string                    { return "[" + b.uid + "]" }

func (b *stubBuilder) AddToContext(bc ports.BuildContext) error {
	return bc.AddBuilder(b, nil)
}

func (b *stubBuilder) Run(context.Context, ports.BuildContext) (domain.TargetPathSet, error) {
	return b.outputs, nil
}

// runAll validates bc and runs every builder sequentially in execution order.
func runAll(t *testing.T, bc *buildctx.Context) {
	t.Helper()
	require.NoError(t, bc.Validate())
	for b := range bc.Walk() {
		out, err := b.Run(context.Background(), bc)
		require.NoError(t, err, "running %s", b)
		require.NoError(t, bc.SetResults(b, out))
	}
}

// writeSuiteFile creates a file under root and registers it in the project's source set.
func writeSuiteFile(t *testing.T, root string, p *domain.Project, set, rel, content string) {
	t.Helper()
	suiteRel := p.RootDir() + "/" + set + "/" + rel
	path := filepath.Join(root, filepath.FromSlash(suiteRel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	p.SourceSet(set).Add(suiteRel)
}

// newProject creates a project rooted at src/<module>/<name>.
func newProject(s *domain.Suite, module, name string) *domain.Project {
	p := s.Module(module).Project(name)
	p.SetRootDir("src/" + module + "/" + name)
	return p
}
