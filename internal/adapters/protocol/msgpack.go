package protocol

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProtocolSerializer = (*Msgpack)(nil)

// Msgpack encodes fingerprint protocols as MessagePack.
type Msgpack struct{}

// NewMsgpack creates a MessagePack serializer.
func NewMsgpack() *Msgpack {
	return &Msgpack{}
}

// Name implements ports.ProtocolSerializer.
func (s *Msgpack) Name() string { return domain.ProtocolMsgpack }

// Write implements ports.ProtocolSerializer.
func (s *Msgpack) Write(w io.Writer, p domain.FingerprintProtocol) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&p); err != nil {
		return zerr.Wrap(err, "failed to encode fingerprint as msgpack")
	}
	return nil
}

// Read implements ports.ProtocolSerializer.
func (s *Msgpack) Read(r io.Reader) (domain.FingerprintProtocol, error) {
	var p domain.FingerprintProtocol
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		corrupt := zerr.Wrap(domain.ErrCorruptFingerprint, "failed to decode msgpack fingerprint")
		return domain.FingerprintProtocol{}, zerr.With(corrupt, "cause", err.Error())
	}
	return p, nil
}
