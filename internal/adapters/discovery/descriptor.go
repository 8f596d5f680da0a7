package discovery

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ProjectDescriptor represents the structure of an optional project.yaml file.
type ProjectDescriptor struct {
	Type       string                    `yaml:"type"`
	References []string                  `yaml:"references"`
	Parameters map[string]map[string]any `yaml:"parameters"`
}

// readDescriptor reads the descriptor in dir. A missing file yields a nil descriptor.
func readDescriptor(dir string) (*ProjectDescriptor, error) {
	path := filepath.Join(dir, domain.ProjectFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is below the suite root
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDiscoveryFailed, err.Error()), "path", path)
	}

	var desc ProjectDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return &desc, nil
}

// apply copies the descriptor onto the project.
func (d *ProjectDescriptor) apply(p *domain.Project) error {
	if d.Type != "" || !p.IsTest() {
		typ, err := domain.ParseProjectType(d.Type)
		if err != nil {
			return zerr.With(err, "project", p.String())
		}
		p.SetType(typ)
	}

	for _, raw := range d.References {
		ref, err := domain.ParseReference(raw)
		if err != nil {
			return zerr.With(err, "project", p.String())
		}
		p.AddReference(ref)
	}

	for block, values := range d.Parameters {
		for key, value := range values {
			p.SetParameter(block, key, value)
		}
	}
	return nil
}
