package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/discovery"
	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newExplorer(t *testing.T) *discovery.Explorer {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return discovery.NewExplorer(fs.NewWalker(), logger)
}

func config(root string) *domain.Config {
	return &domain.Config{Root: root, SuiteName: "demo", SuiteVersion: "1.0"}
}

func TestExplorer_Layout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Mod/App/content/app.txt", "app")
	writeFile(t, root, "src/Mod/App/project.yaml", `
type: executable
references:
  - module://Lib
  - suite://Core/Util
parameters:
  csharp:
    Platform: x86
`)
	writeFile(t, root, "src/Mod/Lib/content/lib.dll", "lib")
	writeFile(t, root, "src/Mod/Lib/content/docs/readme.txt", "docs")
	writeFile(t, root, "src/Mod/Lib/cs/Lib.cs", "class Lib {}")
	writeFile(t, root, "src/Mod/tests/LibTests/cs/LibTests.cs", "class LibTests {}")
	writeFile(t, root, "src/Core/Util/cs/Util.cs", "class Util {}")
	writeFile(t, root, "src/Core/.hidden/ignored.txt", "ignored")

	suite, err := newExplorer(t).Explore(context.Background(), config(root))
	require.NoError(t, err)

	assert.Equal(t, "demo", suite.Name)
	assert.Equal(t, "1.0", suite.Version)
	require.Len(t, suite.Modules(), 2)

	mod, ok := suite.LookupModule("mod")
	require.True(t, ok)
	require.Len(t, mod.Projects(), 2)
	require.Len(t, mod.TestProjects(), 1)

	app, ok := mod.LookupProject("App")
	require.True(t, ok)
	assert.Equal(t, domain.ProjectTypeExecutable, app.Type())
	assert.Equal(t, "src/Mod/App", app.RootDir())
	assert.Equal(t, []domain.Reference{
		domain.MustParseReference("module://Lib"),
		domain.MustParseReference("suite://Core/Util"),
	}, app.References())
	assert.Equal(t, map[string]any{"Platform": "x86"}, app.Parameters("csharp"))
	assert.Equal(t, []string{"src/Mod/App/content/app.txt"}, app.SourceSet(domain.ContentSourceSet).Files())

	lib, ok := mod.LookupProject("Lib")
	require.True(t, ok)
	assert.Equal(t, domain.ProjectTypeLibrary, lib.Type())
	assert.Equal(t, []string{"src/Mod/Lib/content/docs/readme.txt", "src/Mod/Lib/content/lib.dll"},
		lib.SourceSet(domain.ContentSourceSet).Files())
	assert.Equal(t, []string{"src/Mod/Lib/cs/Lib.cs"}, lib.SourceSet("cs").Files())

	tests, ok := mod.LookupProjectOrTestProject("LibTests")
	require.True(t, ok)
	assert.True(t, tests.IsTest())
	assert.Equal(t, domain.ProjectTypeTest, tests.Type())
	assert.Equal(t, "src/Mod/tests/LibTests", tests.RootDir())

	core, ok := suite.LookupModule("Core")
	require.True(t, ok)
	require.Len(t, core.Projects(), 1)
}

func TestExplorer_MissingSourceDirectory(t *testing.T) {
	suite, err := newExplorer(t).Explore(context.Background(), config(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, suite.Modules())
}

func TestExplorer_InvalidDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       error
	}{
		{name: "unknown type", descriptor: "type: plugin\n", want: domain.ErrUnknownProjectType},
		{name: "bad reference", descriptor: "references: [\"http://Lib\"]\n", want: domain.ErrInvalidReference},
		{name: "malformed yaml", descriptor: "references: [\n", want: domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "src/Mod/App/project.yaml", tt.descriptor)

			_, err := newExplorer(t).Explore(context.Background(), config(root))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExplorer_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Mod/App/content/app.txt", "app")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExplorer(t).Explore(ctx, config(root))
	require.ErrorIs(t, err, context.Canceled)
}
