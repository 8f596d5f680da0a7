package app

import "go.trai.ch/keel/internal/core/ports"

// Components holds the resolved dependencies the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a Components value.
func NewComponents(app *App, log ports.Logger) *Components {
	return &Components{App: app, Logger: log}
}
