package fingerprint

import (
	"maps"

	"go.trai.ch/keel/internal/core/domain"
)

// ObjectProperties is a fingerprint of named property values.
type ObjectProperties struct {
	values map[string]string
}

var _ domain.Fingerprint = (*ObjectProperties)(nil)

// NewObjectProperties creates a fingerprint from property values.
func NewObjectProperties(values map[string]string) *ObjectProperties {
	return &ObjectProperties{values: maps.Clone(values)}
}

// Kind implements domain.Fingerprint.
func (o *ObjectProperties) Kind() domain.FingerprintKind { return domain.FingerprintObjectProperties }

// Equal implements domain.Fingerprint.
func (o *ObjectProperties) Equal(other domain.Fingerprint) bool {
	p, ok := other.(*ObjectProperties)
	if !ok {
		return false
	}
	return maps.Equal(o.values, p.values)
}

// Protocol implements domain.Fingerprint.
func (o *ObjectProperties) Protocol() domain.FingerprintProtocol {
	return domain.FingerprintProtocol{
		Kind:   domain.FingerprintObjectProperties,
		Values: maps.Clone(o.values),
	}
}

func decodeObjectProperties(p domain.FingerprintProtocol) (domain.Fingerprint, error) {
	return NewObjectProperties(p.Values), nil
}
