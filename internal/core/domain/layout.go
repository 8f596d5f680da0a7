package domain

import "path/filepath"

const (
	// KeelDirName is the name of the internal suite directory.
	KeelDirName = ".keel"

	// CacheDirName is the name of the build cache directory.
	CacheDirName = "cache"

	// TargetDirName is the default name of the target directory.
	TargetDirName = "target"

	// SourceDirName is the directory under the suite root holding modules.
	SourceDirName = "src"

	// TestsDirName is the directory inside a module holding test projects.
	TestsDirName = "tests"

	// ConfigFileName is the name of the engine configuration file.
	ConfigFileName = "keel.yaml"

	// ProjectFileName is the name of the optional per-project descriptor.
	ProjectFileName = "project.yaml"

	// DepsFileName stores the serialized fingerprint of a cache entry.
	DepsFileName = ".deps"

	// NamesFileName stores the output index of a cache entry.
	NamesFileName = ".names"

	// ContentSourceSet is the source set copied verbatim by the content builder.
	ContentSourceSet = "content"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache root relative to the suite root.
// It joins .keel and cache.
func DefaultCachePath() string {
	return filepath.Join(KeelDirName, CacheDirName)
}

// DefaultTargetPath returns the default target root relative to the suite root.
func DefaultTargetPath() string {
	return TargetDirName
}
