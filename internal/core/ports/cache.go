package ports

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
)

// BuildCache stores builder outputs keyed by BuildKey and guarded by a fingerprint.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BuildCache interface {
	// LockForBuilder acquires the bracket for key. It blocks until the bracket is free or ctx ends.
	LockForBuilder(ctx context.Context, key domain.BuildKey) error
	// UnlockForBuilder releases the bracket for key.
	UnlockForBuilder(key domain.BuildKey) error
	// Contains reports whether an entry for key exists with a fingerprint equal to fp.
	// Unreadable entries are reported as misses.
	Contains(key domain.BuildKey, fp domain.Fingerprint) bool
	// Restore copies the cached outputs of key into targetRoot and returns them.
	Restore(key domain.BuildKey, targetRoot Directory) (domain.TargetPathSet, error)
	// Store records fp and the outputs, read from sourceRoot, under key.
	Store(key domain.BuildKey, fp domain.Fingerprint, outputs domain.TargetPathSet, sourceRoot Directory) error
}
