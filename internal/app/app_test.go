package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/config"
	"go.trai.ch/keel/internal/adapters/discovery"
	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/adapters/logger"
	"go.trai.ch/keel/internal/adapters/metrics"
	"go.trai.ch/keel/internal/adapters/telemetry"
	"go.trai.ch/keel/internal/app"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/engine/scheduler"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newSuite lays out src/Mod/App referencing module://Lib, both with content.
func newSuite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "keel.yaml", "suite:\n  name: demo\ntelemetry: none\nmetrics-file: metrics.prom\n")
	writeFile(t, root, "src/Mod/App/project.yaml", "type: executable\nreferences:\n  - module://Lib\n")
	writeFile(t, root, "src/Mod/App/content/app.txt", "app")
	writeFile(t, root, "src/Mod/Lib/content/lib.txt", "lib")
	writeFile(t, root, "src/Mod/tests/LibTests/project.yaml", "references:\n  - module://Lib\n")
	return root
}

func newApp(t *testing.T) (*app.App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	walker := fs.NewWalker()
	tracer := telemetry.NewSelector(log)
	return app.New(
		config.NewLoader(log),
		discovery.NewExplorer(walker, log),
		scheduler.NewScheduler(tracer, log),
		tracer,
		metrics.New(),
		log,
		walker,
	), &buf
}

func TestApp_Build(t *testing.T) {
	root := newSuite(t)
	a, logs := newApp(t)

	report, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, "demo", report.Suite)
	assert.NotEmpty(t, report.RunID)
	assert.True(t, report.Outputs.Equal(domain.NewTargetPathSet(
		domain.NewTargetRelativePath("Mod", "app.txt"),
		domain.NewTargetRelativePath("Mod", "lib.txt"),
	)))
	assert.Contains(t, logs.String(), "build finished")

	data, err := os.ReadFile(filepath.Join(root, "target", "Mod", "lib.txt"))
	require.NoError(t, err)
	assert.Equal(t, "lib", string(data))

	prom, err := os.ReadFile(filepath.Join(root, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `keel_cache_misses_total{kind="content"} 2`)
}

func TestApp_BuildRestoresFromCache(t *testing.T) {
	root := newSuite(t)
	a, _ := newApp(t)

	_, err := a.Build(context.Background(), root, app.BuildOptions{Parallelism: 2})
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "target")))

	report, err := a.Build(context.Background(), root, app.BuildOptions{Parallelism: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Outputs.Len())

	data, err := os.ReadFile(filepath.Join(root, "target", "Mod", "app.txt"))
	require.NoError(t, err)
	assert.Equal(t, "app", string(data))

	prom, err := os.ReadFile(filepath.Join(root, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `keel_cache_hits_total{kind="content"} 2`)
	assert.Contains(t, string(prom), `keel_builders_run_total{kind="content"} 2`)
}

func TestApp_BuildNoCacheRunsEveryBuilder(t *testing.T) {
	root := newSuite(t)
	a, _ := newApp(t)

	for range 2 {
		_, err := a.Build(context.Background(), root, app.BuildOptions{NoCache: true})
		require.NoError(t, err)
	}

	prom, err := os.ReadFile(filepath.Join(root, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `keel_builders_run_total{kind="content"} 4`)
	assert.NotContains(t, string(prom), "keel_cache_hits_total{")
}

func TestApp_BuildEmptySuite(t *testing.T) {
	root := t.TempDir()
	a, logs := newApp(t)

	report, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root), report.Suite)
	assert.Equal(t, 0, report.Outputs.Len())
	assert.Contains(t, logs.String(), "nothing to build")
}

func TestApp_BuildInvalidReference(t *testing.T) {
	root := newSuite(t)
	writeFile(t, root, "src/Mod/App/project.yaml", "references:\n  - module://Ghost\n")
	a, _ := newApp(t)

	_, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.False(t, errors.Is(err, domain.ErrBuildExecutionFailed), "reference errors surface before execution")
	assert.NoFileExists(t, filepath.Join(root, "target", "Mod", "app.txt"))
}

func TestApp_BuildInvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keel.yaml", "telemetry: carrier-pigeon\n")
	a, _ := newApp(t)

	_, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestApp_BuildUnwritableTarget(t *testing.T) {
	root := newSuite(t)
	writeFile(t, root, "keel.yaml", "target: blocked\ntelemetry: none\n")
	writeFile(t, root, "blocked", "not a directory")
	a, _ := newApp(t)

	_, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrFileCreateFailed)
}

func TestApp_Clean(t *testing.T) {
	root := newSuite(t)
	a, logs := newApp(t)

	_, err := a.Build(context.Background(), root, app.BuildOptions{})
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(root, "target"))
	require.DirExists(t, filepath.Join(root, domain.DefaultCachePath()))

	require.NoError(t, a.Clean(context.Background(), root, app.CleanOptions{Target: true}))
	assert.NoDirExists(t, filepath.Join(root, "target"))
	assert.DirExists(t, filepath.Join(root, domain.DefaultCachePath()))

	require.NoError(t, a.Clean(context.Background(), root, app.CleanOptions{Target: true, Cache: true}))
	assert.NoDirExists(t, filepath.Join(root, domain.DefaultCachePath()))
	assert.Contains(t, logs.String(), "removed build cache")

	assert.FileExists(t, filepath.Join(root, "src", "Mod", "Lib", "content", "lib.txt"))
}
