package ports

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
)

// SuiteExplorer builds the suite model from a directory layout.
//
//go:generate mockgen -source=explorer.go -destination=mocks/mock_explorer.go -package=mocks
type SuiteExplorer interface {
	// Explore discovers the modules and projects below cfg.Root.
	Explore(ctx context.Context, cfg *domain.Config) (*domain.Suite, error)
}
