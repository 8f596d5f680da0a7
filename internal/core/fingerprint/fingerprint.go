// Package fingerprint implements the dependency fingerprints used to invalidate cached build outputs.
package fingerprint

import (
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
)

type decoder func(p domain.FingerprintProtocol) (domain.Fingerprint, error)

// decoders is the closed set of fingerprint kinds that can be reconstructed from a protocol.
var decoders map[domain.FingerprintKind]decoder

func init() {
	decoders = map[domain.FingerprintKind]decoder{
		domain.FingerprintSourceSet:        decodeSourceSet,
		domain.FingerprintObjectProperties: decodeObjectProperties,
		domain.FingerprintCombined:         decodeCombined,
	}
}

// FromProtocol reconstructs a fingerprint from its serialized form.
func FromProtocol(p domain.FingerprintProtocol) (domain.Fingerprint, error) {
	decode, ok := decoders[p.Kind]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownFingerprintKind, "failed to decode fingerprint")
		return nil, zerr.With(err, "kind", string(p.Kind))
	}
	return decode(p)
}
