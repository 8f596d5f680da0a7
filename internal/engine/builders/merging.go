package builders

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
)

// MergingKind is the kind of builders merging the outputs of other builders.
const MergingKind = "merge"

var (
	_ ports.Builder = (*MergingBuilder)(nil)
	_ Expander      = (*MergingBuilder)(nil)
)

// MergingBuilder depends on a fixed set of builders and returns the union of their outputs.
type MergingBuilder struct {
	uid      string
	builders []ports.Builder
}

// NewMergingBuilder creates a merging builder. The builders must already be registered.
func NewMergingBuilder(uid string, builders []ports.Builder) *MergingBuilder {
	return &MergingBuilder{uid: uid, builders: builders}
}

// Kind implements ports.Builder.
func (m *MergingBuilder) Kind() string { return MergingKind }

// UID implements ports.Builder.
func (m *MergingBuilder) UID() string { return m.uid }

// Identity implements ports.Builder.
func (m *MergingBuilder) Identity() string { return identity(MergingKind, m.uid) }

// Dependencies implements ports.Builder.
func (m *MergingBuilder) Dependencies() domain.Dependencies { return combinedDependencies(m.builders) }

// String implements ports.Builder.
func (m *MergingBuilder) String() string { return "[merge:" + m.uid + "]" }

// AddToContext implements ports.Builder.
func (m *MergingBuilder) AddToContext(bc ports.BuildContext) error {
	return register(bc, m, m)
}

// Expand implements Expander.
func (m *MergingBuilder) Expand(ports.BuildContext) ([]ports.Builder, error) {
	return m.builders, nil
}

// Run implements ports.Builder.
func (m *MergingBuilder) Run(_ context.Context, bc ports.BuildContext) (domain.TargetPathSet, error) {
	return unionResults(bc, bc.Dependencies(m))
}
