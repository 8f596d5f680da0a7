package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/cache"
	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/adapters/protocol"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cacheTestEnv struct {
	cache     *cache.FileBuildCache
	cacheDir  *fs.LocalDirectory
	targetDir *fs.LocalDirectory
	logger    *mocks.MockLogger
	metrics   *mocks.MockMetrics
}

func setupCacheTest(t *testing.T, serializer ports.ProtocolSerializer) cacheTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	cacheDir, err := fs.NewLocalDirectory(t.TempDir(), nil)
	require.NoError(t, err)
	targetDir, err := fs.NewLocalDirectory(t.TempDir(), nil)
	require.NoError(t, err)

	env := cacheTestEnv{
		cacheDir:  cacheDir,
		targetDir: targetDir,
		logger:    mocks.NewMockLogger(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
	}
	env.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	env.metrics.EXPECT().CacheStored(gomock.Any()).AnyTimes()
	env.metrics.EXPECT().FilesRestored(gomock.Any()).AnyTimes()

	env.cache = cache.NewFileBuildCache(cacheDir, serializer, cache.DefaultIgnorableOutputPolicy(), env.logger, env.metrics)
	return env
}

func writeTarget(t *testing.T, dir ports.Directory, rel, content string) {
	t.Helper()
	path := filepath.Join(dir.Path(), filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readTarget(t *testing.T, dir ports.Directory, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir.Path(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func propsFingerprint(value string) domain.Fingerprint {
	return fingerprint.NewCombined(
		fingerprint.NewObjectProperties(map[string]string{"Name": value}),
		fingerprint.NewSourceSet([]domain.FileStamp{{Path: "src/a.cs", Size: 1, Checksum: 42}}),
	)
}

var appKey = domain.NewBuildKey("content", "mod.app")

func TestFileBuildCache_StoreAndRestore(t *testing.T) {
	for _, serializer := range []ports.ProtocolSerializer{protocol.NewJSON(), protocol.NewMsgpack()} {
		t.Run(serializer.Name(), func(t *testing.T) {
			env := setupCacheTest(t, serializer)
			exe := domain.NewTargetRelativePath("bin", "app.exe")
			writeTarget(t, env.targetDir, "bin/app.exe", "binary v1")

			fp := propsFingerprint("app")
			assert.False(t, env.cache.Contains(appKey, fp), "empty cache")

			require.NoError(t, env.cache.Store(appKey, fp, domain.NewTargetPathSet(exe), env.targetDir))
			assert.True(t, env.cache.Contains(appKey, fp))
			assert.True(t, env.cache.Contains(appKey, propsFingerprint("app")), "equal fingerprint from a new instance")
			assert.False(t, env.cache.Contains(appKey, propsFingerprint("other")))
			assert.False(t, env.cache.Contains(domain.NewBuildKey("content", "mod.other"), fp))

			require.NoError(t, os.RemoveAll(filepath.Join(env.targetDir.Path(), "bin")))

			restored, err := env.cache.Restore(appKey, env.targetDir)
			require.NoError(t, err)
			assert.True(t, restored.Equal(domain.NewTargetPathSet(exe)))
			assert.Equal(t, "binary v1", readTarget(t, env.targetDir, "bin/app.exe"))
		})
	}
}

func TestFileBuildCache_RestoreOnlyCopiesChangedFiles(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	outputs := domain.NewTargetPathSet(
		domain.NewTargetRelativePath("bin", "same.dll"),
		domain.NewTargetRelativePath("bin", "changed.dll"),
	)
	writeTarget(t, env.targetDir, "bin/same.dll", "same")
	writeTarget(t, env.targetDir, "bin/changed.dll", "aaaa")
	require.NoError(t, env.cache.Store(appKey, propsFingerprint("app"), outputs, env.targetDir))

	old := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	samePath := filepath.Join(env.targetDir.Path(), "bin", "same.dll")
	require.NoError(t, os.Chtimes(samePath, old, old))
	// Same size, different content.
	writeTarget(t, env.targetDir, "bin/changed.dll", "bbbb")

	env.metrics.EXPECT().FilesRestored(1)
	restored, err := env.cache.Restore(appKey, env.targetDir)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Len())

	info, err := os.Stat(samePath)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "identical file must not be rewritten")
	assert.Equal(t, "aaaa", readTarget(t, env.targetDir, "bin/changed.dll"))
}

func TestFileBuildCache_NameOnlyMarkers(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	file := domain.NewTargetRelativePath("mod", "lib.dll")
	virtual := domain.NewTargetRelativePath("mod", "lib.virtual")
	writeTarget(t, env.targetDir, "mod/lib.dll", "dll")

	require.NoError(t, env.cache.Store(appKey, propsFingerprint("lib"), domain.NewTargetPathSet(file, virtual), env.targetDir))

	restoreDir, err := fs.NewLocalDirectory(t.TempDir(), nil)
	require.NoError(t, err)
	restored, err := env.cache.Restore(appKey, restoreDir)
	require.NoError(t, err)

	assert.True(t, restored.Contains(file))
	assert.True(t, restored.Contains(virtual))
	assert.True(t, restoreDir.Exists("mod/lib.dll"))
	assert.False(t, restoreDir.Exists("mod/lib.virtual"))
}

func TestFileBuildCache_StoreReplacesPreviousEntry(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	first := domain.NewTargetRelativePath("mod", "a.txt")
	writeTarget(t, env.targetDir, "mod/a.txt", "stale")
	require.NoError(t, env.cache.Store(appKey, propsFingerprint("v1"), domain.NewTargetPathSet(first), env.targetDir))

	// The same line now names an output without content.
	require.NoError(t, os.Remove(filepath.Join(env.targetDir.Path(), "mod", "a.txt")))
	require.NoError(t, env.cache.Store(appKey, propsFingerprint("v2"), domain.NewTargetPathSet(first), env.targetDir))

	assert.False(t, env.cache.Contains(appKey, propsFingerprint("v1")))
	assert.True(t, env.cache.Contains(appKey, propsFingerprint("v2")))

	restored, err := env.cache.Restore(appKey, env.targetDir)
	require.NoError(t, err)
	assert.True(t, restored.Contains(first))
	assert.False(t, env.targetDir.Exists("mod/a.txt"), "stale blob must not be restored")
}

func TestFileBuildCache_IndexFormat(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	outputs := domain.NewTargetPathSet(
		domain.NewTargetRelativePath("mod", "lib.dll"),
		domain.NewTargetRelativePath("mod", "lib.pdb"),
		domain.NewTargetRelativePath("", "marker"),
		domain.NewTargetRelativePath("bin", "sub/app.exe"),
	)
	writeTarget(t, env.targetDir, "mod/lib.dll", "dll")
	writeTarget(t, env.targetDir, "bin/sub/app.exe", "exe")

	require.NoError(t, env.cache.Store(appKey, propsFingerprint("app"), outputs, env.targetDir))

	entry := filepath.Join(env.cacheDir.Path(), appKey.DirName())
	names, err := os.ReadFile(filepath.Join(entry, domain.NamesFileName))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "names", names)

	// Blobs are numbered by index line; name-only lines have none.
	for blob, want := range map[string]bool{"0": false, "1": true, "2": true, "3": false, "4": false} {
		_, err := os.Stat(filepath.Join(entry, blob))
		assert.Equal(t, want, err == nil, "blob %s", blob)
	}
}

func TestFileBuildCache_CorruptDepsIsMiss(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	fp := propsFingerprint("app")
	require.NoError(t, env.cache.Store(appKey, fp, domain.NewTargetPathSet(), env.targetDir))

	deps := filepath.Join(env.cacheDir.Path(), appKey.DirName(), domain.DepsFileName)
	require.NoError(t, os.WriteFile(deps, []byte("{not json"), 0o600))

	env.logger.EXPECT().Warn("ignoring corrupt cache entry", gomock.Any())
	env.metrics.EXPECT().CacheCorrupt()
	assert.False(t, env.cache.Contains(appKey, fp))
}

func TestFileBuildCache_IgnorableOutputs(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	exe := domain.NewTargetRelativePath("bin", "app.exe")
	host := domain.NewTargetRelativePath("bin", "App.VSHost.EXE")
	writeTarget(t, env.targetDir, "bin/app.exe", "exe")
	// A directory in place of a file makes reading it fail.
	require.NoError(t, os.MkdirAll(filepath.Join(env.targetDir.Path(), "bin", "App.VSHost.EXE"), 0o750))

	env.logger.EXPECT().Warn("skipping unreadable output", gomock.Any())
	require.NoError(t, env.cache.Store(appKey, propsFingerprint("app"), domain.NewTargetPathSet(exe, host), env.targetDir))

	restored, err := env.cache.Restore(appKey, env.targetDir)
	require.NoError(t, err)
	assert.True(t, restored.Equal(domain.NewTargetPathSet(exe)))
}

func TestFileBuildCache_OutputFailureAbortsStore(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	broken := domain.NewTargetRelativePath("bin", "lib.dll")
	require.NoError(t, os.MkdirAll(filepath.Join(env.targetDir.Path(), "bin", "lib.dll"), 0o750))

	fp := propsFingerprint("app")
	err := env.cache.Store(appKey, fp, domain.NewTargetPathSet(broken), env.targetDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheStoreFailed.Error())
	assert.False(t, env.cache.Contains(appKey, fp), "aborted store leaves no entry")
}

func TestSuffixPolicy(t *testing.T) {
	policy := cache.SuffixPolicy(".vshost.exe", ".tmp")
	assert.True(t, policy(domain.NewTargetRelativePath("bin", "x.VSHOST.exe")))
	assert.True(t, policy(domain.NewTargetRelativePath("bin", "scratch.tmp")))
	assert.False(t, policy(domain.NewTargetRelativePath("bin", "app.exe")))
	assert.False(t, cache.SuffixPolicy()(domain.NewTargetRelativePath("bin", "x.vshost.exe")))
}

func TestFileBuildCache_Locking(t *testing.T) {
	env := setupCacheTest(t, protocol.NewJSON())
	other := domain.NewBuildKey("content", "mod.other")

	err := env.cache.UnlockForBuilder(appKey)
	require.ErrorIs(t, err, domain.ErrCacheLockNotHeld)

	require.NoError(t, env.cache.LockForBuilder(context.Background(), appKey))
	require.NoError(t, env.cache.LockForBuilder(context.Background(), other), "keys are independent")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = env.cache.LockForBuilder(ctx, appKey)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, env.cache.UnlockForBuilder(appKey))
	require.NoError(t, env.cache.UnlockForBuilder(other))
	require.NoError(t, env.cache.LockForBuilder(context.Background(), appKey))
	require.NoError(t, env.cache.UnlockForBuilder(appKey))
}

func TestFileBuildCache_ConcurrentKeys(t *testing.T) {
	env := setupCacheTest(t, protocol.NewMsgpack())
	writeTarget(t, env.targetDir, "mod/out.txt", "payload")
	outputs := domain.NewTargetPathSet(domain.NewTargetRelativePath("mod", "out.txt"))

	var wg sync.WaitGroup
	for _, uid := range []string{"a", "b", "c", "d"} {
		wg.Go(func() {
			key := domain.NewBuildKey("content", uid)
			fp := propsFingerprint(uid)
			for range 5 {
				assert.NoError(t, env.cache.LockForBuilder(context.Background(), key))
				if !env.cache.Contains(key, fp) {
					assert.NoError(t, env.cache.Store(key, fp, outputs, env.targetDir))
				}
				assert.NoError(t, env.cache.UnlockForBuilder(key))
			}
		})
	}
	wg.Wait()

	for _, uid := range []string{"a", "b", "c", "d"} {
		assert.True(t, env.cache.Contains(domain.NewBuildKey("content", uid), propsFingerprint(uid)))
	}
}
