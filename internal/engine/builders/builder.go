// Package builders contains the builders that make up a build graph.
package builders

import (
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
)

// Expander is implemented by builders whose prerequisites are other builders.
type Expander interface {
	// Expand registers the prerequisites in bc and returns them.
	Expand(bc ports.BuildContext) ([]ports.Builder, error)
}

// register adds b to bc, expanding its prerequisites only on first registration.
func register(bc ports.BuildContext, b ports.Builder, e Expander) error {
	return bc.Register(b, func(scoped ports.BuildContext) ([]ports.Builder, error) {
		if e == nil {
			return nil, nil
		}
		return e.Expand(scoped)
	})
}

func identity(kind, uid string) string {
	return kind + ":" + strings.ToLower(uid)
}

// combinedDependencies combines the dependencies of builders.
func combinedDependencies(builders []ports.Builder) domain.Dependencies {
	deps := make([]domain.Dependencies, 0, len(builders))
	for _, b := range builders {
		deps = append(deps, b.Dependencies())
	}
	return fingerprint.Combine(deps...)
}

// unionResults collects the results of builders from bc.
func unionResults(bc ports.BuildContext, builders []ports.Builder) (domain.TargetPathSet, error) {
	result := domain.NewTargetPathSet()
	for _, b := range builders {
		out, err := bc.Results(b)
		if err != nil {
			return nil, err
		}
		result.Union(out)
	}
	return result, nil
}
