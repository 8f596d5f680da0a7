package fingerprint

import (
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
)

// Combined is an unordered collection of child fingerprints.
type Combined struct {
	children []domain.Fingerprint
}

var _ domain.Fingerprint = (*Combined)(nil)

// NewCombined creates a combined fingerprint.
func NewCombined(children ...domain.Fingerprint) *Combined {
	return &Combined{children: children}
}

// Kind implements domain.Fingerprint.
func (c *Combined) Kind() domain.FingerprintKind { return domain.FingerprintCombined }

// Len returns the number of children.
func (c *Combined) Len() int { return len(c.children) }

// Equal reports whether other holds equal children, ignoring order.
func (c *Combined) Equal(other domain.Fingerprint) bool {
	o, ok := other.(*Combined)
	if !ok || len(c.children) != len(o.children) {
		return false
	}

	used := make([]bool, len(o.children))
outer:
	for _, child := range c.children {
		for i, candidate := range o.children {
			if !used[i] && child.Equal(candidate) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Protocol implements domain.Fingerprint.
func (c *Combined) Protocol() domain.FingerprintProtocol {
	children := make([]domain.FingerprintProtocol, len(c.children))
	for i, child := range c.children {
		children[i] = child.Protocol()
	}
	return domain.FingerprintProtocol{
		Kind:     domain.FingerprintCombined,
		Children: children,
	}
}

func decodeCombined(p domain.FingerprintProtocol) (domain.Fingerprint, error) {
	children := make([]domain.Fingerprint, 0, len(p.Children))
	for i, child := range p.Children {
		fp, err := FromProtocol(child)
		if err != nil {
			return nil, zerr.With(err, "child", i)
		}
		children = append(children, fp)
	}
	return NewCombined(children...), nil
}
