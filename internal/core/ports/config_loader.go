package ports

import "go.trai.ch/keel/internal/core/domain"

// ConfigLoader defines the interface for loading the engine configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration of the suite rooted at root.
	// A missing configuration file yields the defaults.
	Load(root string) (*domain.Config, error)
}
