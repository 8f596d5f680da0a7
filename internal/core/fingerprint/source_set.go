package fingerprint

import (
	"slices"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
)

// SourceSet is a fingerprint of file sizes and content checksums.
type SourceSet struct {
	files []domain.FileStamp
}

var _ domain.Fingerprint = (*SourceSet)(nil)

// NewSourceSet creates a fingerprint from file stamps. The stamps are sorted by path.
func NewSourceSet(stamps []domain.FileStamp) *SourceSet {
	files := slices.Clone(stamps)
	slices.SortFunc(files, func(a, b domain.FileStamp) int {
		return strings.Compare(a.Path, b.Path)
	})
	return &SourceSet{files: files}
}

// Kind implements domain.Fingerprint.
func (s *SourceSet) Kind() domain.FingerprintKind { return domain.FingerprintSourceSet }

// Files returns the stamps sorted by path.
func (s *SourceSet) Files() []domain.FileStamp { return slices.Clone(s.files) }

// Equal implements domain.Fingerprint.
func (s *SourceSet) Equal(other domain.Fingerprint) bool {
	o, ok := other.(*SourceSet)
	if !ok {
		return false
	}
	return slices.Equal(s.files, o.files)
}

// Protocol implements domain.Fingerprint.
func (s *SourceSet) Protocol() domain.FingerprintProtocol {
	return domain.FingerprintProtocol{
		Kind:  domain.FingerprintSourceSet,
		Files: slices.Clone(s.files),
	}
}

func decodeSourceSet(p domain.FingerprintProtocol) (domain.Fingerprint, error) {
	fp := NewSourceSet(p.Files)
	for i := 1; i < len(fp.files); i++ {
		if fp.files[i-1].Path == fp.files[i].Path {
			err := zerr.Wrap(domain.ErrCorruptFingerprint, "duplicate file in source set fingerprint")
			return nil, zerr.With(err, "path", fp.files[i].Path)
		}
	}
	return fp, nil
}
