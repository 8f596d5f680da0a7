package fingerprint

import (
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// SourceSetDependencies depends on the content of a source set.
type SourceSetDependencies struct {
	factory ports.SourceSetFingerprintFactory
	set     *domain.SourceSet
}

// FromSourceSet creates dependencies on the files of set.
func FromSourceSet(factory ports.SourceSetFingerprintFactory, set *domain.SourceSet) *SourceSetDependencies {
	return &SourceSetDependencies{factory: factory, set: set}
}

// CreateFingerprint implements domain.Dependencies.
func (d *SourceSetDependencies) CreateFingerprint() (domain.Fingerprint, error) {
	fp, err := d.factory.CreateSourceSetFingerprint(d.set)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "source_set", d.set.Name())
	}
	return fp, nil
}

// ProjectPropertiesDependencies depends on named properties of a project.
type ProjectPropertiesDependencies struct {
	project    *domain.Project
	properties []string
}

// FromProjectProperties creates dependencies on the given properties of project.
func FromProjectProperties(project *domain.Project, properties ...string) *ProjectPropertiesDependencies {
	return &ProjectPropertiesDependencies{project: project, properties: properties}
}

// CreateFingerprint implements domain.Dependencies.
func (d *ProjectPropertiesDependencies) CreateFingerprint() (domain.Fingerprint, error) {
	values := make(map[string]string, len(d.properties))
	for _, name := range d.properties {
		v, err := d.project.Property(name)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	return NewObjectProperties(values), nil
}

// MultipleDependencies combines several dependencies into one combined fingerprint.
type MultipleDependencies struct {
	deps []domain.Dependencies
}

// Combine merges dependencies. Nil entries are dropped and nested combinations are flattened.
func Combine(deps ...domain.Dependencies) *MultipleDependencies {
	flat := make([]domain.Dependencies, 0, len(deps))
	for _, d := range deps {
		switch v := d.(type) {
		case nil:
		case *MultipleDependencies:
			if v != nil {
				flat = append(flat, v.deps...)
			}
		default:
			flat = append(flat, d)
		}
	}
	return &MultipleDependencies{deps: flat}
}

// None returns dependencies with an empty combined fingerprint.
func None() *MultipleDependencies {
	return &MultipleDependencies{}
}

// Len returns the number of combined dependencies.
func (m *MultipleDependencies) Len() int { return len(m.deps) }

// CreateFingerprint implements domain.Dependencies.
func (m *MultipleDependencies) CreateFingerprint() (domain.Fingerprint, error) {
	children := make([]domain.Fingerprint, 0, len(m.deps))
	for _, d := range m.deps {
		fp, err := d.CreateFingerprint()
		if err != nil {
			return nil, err
		}
		children = append(children, fp)
	}
	return NewCombined(children...), nil
}
