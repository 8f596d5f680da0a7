package builders_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/core/ports/mocks"
	"go.trai.ch/keel/internal/engine/buildctx"
	"go.trai.ch/keel/internal/engine/builders"
	"go.uber.org/mock/gomock"
)

func TestContentBuilder_CopiesContent(t *testing.T) {
	root := t.TempDir()
	s := domain.NewSuite(root)
	p := newProject(s, "Mod", "Lib")
	writeSuiteFile(t, root, p, "content", "a.txt", "a")
	writeSuiteFile(t, root, p, "content", "nested/b.txt", "b")

	suiteDir, err := fs.NewLocalDirectory(root, nil)
	require.NoError(t, err)
	targetDir, err := fs.NewLocalDirectory(filepath.Join(root, "target"), nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug("copying content", gomock.Any()).Times(2)

	b := builders.NewContentBuilder(p, fs.NewHasher(suiteDir, 1), suiteDir, targetDir, logger, nil)
	assert.Equal(t, "Mod.Lib", b.UID())
	assert.Equal(t, "[Mod.Lib/content]", b.String())

	out, err := b.Run(context.Background(), buildctx.New())
	require.NoError(t, err)
	assert.True(t, out.Equal(domain.NewTargetPathSet(
		domain.NewTargetRelativePath("Mod", "a.txt"),
		domain.NewTargetRelativePath("Mod", "nested/b.txt"),
	)))

	data, err := os.ReadFile(filepath.Join(root, "target", "Mod", "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	fp, err := b.Dependencies().CreateFingerprint()
	require.NoError(t, err)
	assert.Equal(t, domain.FingerprintSourceSet, fp.Kind())
}

func TestContentFactory(t *testing.T) {
	root := t.TempDir()
	s := domain.NewSuite(root)
	empty := newProject(s, "Mod", "Empty")
	one := newProject(s, "Mod", "One")
	two := newProject(s, "Mod", "Two")
	writeSuiteFile(t, root, one, "content", "one.txt", "1")
	writeSuiteFile(t, root, two, "content", "two.txt", "2")

	suiteDir, err := fs.NewLocalDirectory(root, nil)
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	factory := builders.NewContentFactory(fs.NewHasher(suiteDir, 1), suiteDir, suiteDir,
		mocks.NewMockBuildCache(ctrl), mocks.NewMockLogger(ctrl), mocks.NewMockMetrics(ctrl))
	assert.Equal(t, builders.ContentKind, factory.Name())

	bc := buildctx.New()
	b, err := factory.AddToContext(bc, []*domain.Project{empty})
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = factory.AddToContext(bc, []*domain.Project{one})
	require.NoError(t, err)
	assert.IsType(t, &builders.Cached{}, b)

	merged, err := factory.AddToContext(bc, []*domain.Project{two, one})
	require.NoError(t, err)
	assert.Equal(t, builders.MergingKind, merged.Kind())
	assert.Equal(t, "content:Mod.One+Mod.Two", merged.UID())
	assert.Len(t, bc.Dependencies(merged), 2)
	assert.Equal(t, 3, bc.Len(), "content builders are shared between calls")
}

func TestMergingBuilder_UnionsResults(t *testing.T) {
	a := &stubBuilder{uid: "a", outputs: domain.NewTargetPathSet(domain.NewTargetRelativePath("m", "a"))}
	b := &stubBuilder{uid: "b", outputs: domain.NewTargetPathSet(domain.NewTargetRelativePath("m", "b"))}

	bc := buildctx.New()
	require.NoError(t, a.AddToContext(bc))
	require.NoError(t, b.AddToContext(bc))
	m := builders.NewMergingBuilder("ab", []ports.Builder{a, b})
	require.NoError(t, m.AddToContext(bc))

	runAll(t, bc)
	out, err := bc.Results(m)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
}

func TestContentBuilder_CycleThroughReferences(t *testing.T) {
	root := t.TempDir()
	s := domain.NewSuite(root)
	a := newProject(s, "Mod", "A")
	b := newProject(s, "Mod", "B")
	writeSuiteFile(t, root, a, "content", "a.txt", "a")
	writeSuiteFile(t, root, b, "content", "b.txt", "b")
	a.AddReference(domain.MustParseReference("module://B"))
	b.AddReference(domain.MustParseReference("suite://Mod/A"))

	suiteDir, err := fs.NewLocalDirectory(root, nil)
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	factory := builders.NewContentFactory(fs.NewHasher(suiteDir, 1), suiteDir, suiteDir,
		mocks.NewMockBuildCache(ctrl), mocks.NewMockLogger(ctrl), mocks.NewMockMetrics(ctrl))

	bc := buildctx.New()
	_, err = factory.AddToContext(bc, []*domain.Project{a})
	require.NoError(t, err)
	require.ErrorIs(t, bc.Validate(), domain.ErrCycleDetected)
}
