package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidReference is returned when a reference cannot be parsed or does not resolve to a project.
	ErrInvalidReference = zerr.New("invalid reference")

	// ErrModuleNotFound is returned when a module lookup does not find a module.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrProjectNotFound is returned when a project lookup does not find a project.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrUnknownProperty is returned when a property fingerprint names a property the project does not expose.
	ErrUnknownProperty = zerr.New("unknown project property")

	// ErrUnknownProjectType is returned when a project descriptor declares an unsupported type.
	ErrUnknownProjectType = zerr.New("unknown project type")

	// ErrCycleDetected is returned when a cycle is detected in the builder graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMissingDependency is returned when a builder depends on a builder that was never registered.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrBuilderNotRegistered is returned when an operation targets a builder that is not part of the context.
	ErrBuilderNotRegistered = zerr.New("builder not registered")

	// ErrResultsNotAvailable is returned when a builder's results are requested before it ran.
	ErrResultsNotAvailable = zerr.New("builder results not available")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrBuilderFailed is returned when a single builder's run fails.
	ErrBuilderFailed = zerr.New("builder failed")

	// ErrFingerprintFailed is returned when a builder's dependencies cannot be fingerprinted.
	ErrFingerprintFailed = zerr.New("failed to create fingerprint")

	// ErrUnknownFingerprintKind is returned when a serialized fingerprint carries a kind tag that has no decoder.
	ErrUnknownFingerprintKind = zerr.New("unknown fingerprint kind")

	// ErrCorruptFingerprint is returned when a serialized fingerprint cannot be decoded.
	ErrCorruptFingerprint = zerr.New("corrupt fingerprint")

	// ErrUnknownProtocol is returned when a serializer name is not supported.
	ErrUnknownProtocol = zerr.New("unknown fingerprint protocol")

	// ErrCacheLockNotHeld is returned when a builder lock is released without being held.
	ErrCacheLockNotHeld = zerr.New("cache lock not held")

	// ErrCacheStoreFailed is returned when outputs cannot be stored in the build cache.
	ErrCacheStoreFailed = zerr.New("failed to store build outputs")

	// ErrCacheRestoreFailed is returned when outputs cannot be restored from the build cache.
	ErrCacheRestoreFailed = zerr.New("failed to restore build outputs")

	// ErrCacheIndexCorrupt is returned when a names index line cannot be parsed.
	ErrCacheIndexCorrupt = zerr.New("corrupt cache index")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileCreateFailed is returned when a file cannot be created.
	ErrFileCreateFailed = zerr.New("failed to create file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFileCopyFailed is returned when copying file content fails.
	ErrFileCopyFailed = zerr.New("failed to copy file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrDirectoryListFailed is returned when a directory cannot be listed.
	ErrDirectoryListFailed = zerr.New("failed to list directory")

	// ErrPathOutsideRoot is returned when a path escapes the directory it is resolved against.
	ErrPathOutsideRoot = zerr.New("path is outside root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrDiscoveryFailed is returned when the suite layout cannot be explored.
	ErrDiscoveryFailed = zerr.New("failed to discover suite")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
