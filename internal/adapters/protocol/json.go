package protocol

import (
	"encoding/json"
	"io"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProtocolSerializer = (*JSON)(nil)

// JSON encodes fingerprint protocols as a single JSON document.
type JSON struct{}

// NewJSON creates a JSON serializer.
func NewJSON() *JSON {
	return &JSON{}
}

// Name implements ports.ProtocolSerializer.
func (s *JSON) Name() string { return domain.ProtocolJSON }

// Write implements ports.ProtocolSerializer.
func (s *JSON) Write(w io.Writer, p domain.FingerprintProtocol) error {
	if err := json.NewEncoder(w).Encode(p); err != nil {
		return zerr.Wrap(err, "failed to encode fingerprint as json")
	}
	return nil
}

// Read implements ports.ProtocolSerializer.
func (s *JSON) Read(r io.Reader) (domain.FingerprintProtocol, error) {
	var p domain.FingerprintProtocol
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		corrupt := zerr.Wrap(domain.ErrCorruptFingerprint, "failed to decode json fingerprint")
		return domain.FingerprintProtocol{}, zerr.With(corrupt, "cause", err.Error())
	}
	return p, nil
}
