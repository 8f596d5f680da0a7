package fs

import (
	"io"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SourceSetFingerprintFactory = (*Hasher)(nil)

// Hasher fingerprints source sets by file size and XXHash of their content.
type Hasher struct {
	root  ports.Directory
	limit int
}

// NewHasher creates a Hasher resolving source set paths against root.
// At most limit files are hashed concurrently; values below one use the number of CPUs.
func NewHasher(root ports.Directory, limit int) *Hasher {
	if limit < 1 {
		limit = runtime.NumCPU()
	}
	return &Hasher{root: root, limit: limit}
}

// CreateSourceSetFingerprint implements ports.SourceSetFingerprintFactory.
func (h *Hasher) CreateSourceSetFingerprint(set *domain.SourceSet) (domain.Fingerprint, error) {
	files := set.Files()
	stamps := make([]domain.FileStamp, len(files))

	var g errgroup.Group
	g.SetLimit(h.limit)
	for i, file := range files {
		g.Go(func() error {
			stamp, err := Stamp(h.root, file)
			if err != nil {
				return err
			}
			stamps[i] = stamp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.With(err, "source_set", set.Name())
	}

	return fingerprint.NewSourceSet(stamps), nil
}

// Stamp reads the size and content checksum of a file relative to dir.
func Stamp(dir ports.Directory, rel string) (domain.FileStamp, error) {
	size, err := dir.FileSize(rel)
	if err != nil {
		return domain.FileStamp{}, err
	}
	sum, err := ComputeFileHash(dir, rel)
	if err != nil {
		return domain.FileStamp{}, err
	}
	return domain.FileStamp{Path: rel, Size: size, Checksum: sum}, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(dir ports.Directory, rel string) (uint64, error) {
	f, err := dir.OpenRead(rel)
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", rel)
	}

	return hasher.Sum64(), nil
}
