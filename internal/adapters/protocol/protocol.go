// Package protocol implements the wire formats used to persist fingerprints in the build cache.
package protocol

import (
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the serializer registered under name.
func New(name string) (ports.ProtocolSerializer, error) {
	switch strings.ToLower(name) {
	case "", domain.ProtocolJSON:
		return NewJSON(), nil
	case domain.ProtocolMsgpack:
		return NewMsgpack(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownProtocol, "failed to select serializer"), "protocol", name)
	}
}
