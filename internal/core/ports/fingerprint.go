package ports

import (
	"io"

	"go.trai.ch/keel/internal/core/domain"
)

//go:generate mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks

// ProtocolSerializer encodes fingerprint protocols for the build cache.
type ProtocolSerializer interface {
	// Name identifies the wire format.
	Name() string
	// Write encodes p to w.
	Write(w io.Writer, p domain.FingerprintProtocol) error
	// Read decodes a protocol from r.
	Read(r io.Reader) (domain.FingerprintProtocol, error)
}

// SourceSetFingerprintFactory fingerprints the files of a source set.
type SourceSetFingerprintFactory interface {
	// CreateSourceSetFingerprint hashes every file of set.
	CreateSourceSetFingerprint(set *domain.SourceSet) (domain.Fingerprint, error)
}
