package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// ProjectType classifies what a project produces.
type ProjectType string

const (
	// ProjectTypeLibrary produces a library. It is the default.
	ProjectTypeLibrary ProjectType = "library"
	// ProjectTypeExecutable produces a console executable.
	ProjectTypeExecutable ProjectType = "executable"
	// ProjectTypeWindowsExecutable produces a windowed executable.
	ProjectTypeWindowsExecutable ProjectType = "windows-executable"
	// ProjectTypeTest produces a test assembly.
	ProjectTypeTest ProjectType = "test"
)

// ParseProjectType parses a descriptor value. The empty string yields ProjectTypeLibrary.
func ParseProjectType(s string) (ProjectType, error) {
	switch t := ProjectType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return ProjectTypeLibrary, nil
	case ProjectTypeLibrary, ProjectTypeExecutable, ProjectTypeWindowsExecutable, ProjectTypeTest:
		return t, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownProjectType, "failed to parse project type"), "type", s)
	}
}

// Property names understood by Project.Property.
const (
	PropertyName    = "Name"
	PropertyModule  = "Module"
	PropertyType    = "Type"
	PropertyRootDir = "RootDir"
	PropertyVersion = "Version"

	// PropertyParamPrefix selects a parameter block entry as "param:<block>.<key>".
	PropertyParamPrefix = "param:"
)

// Project is a buildable unit inside a module.
type Project struct {
	module *Module
	name   string
	isTest bool

	mu         sync.RWMutex
	typ        ProjectType
	rootDir    string
	sourceSets map[string]*SourceSet
	parameters map[string]map[string]any
	references []Reference
}

func newProject(m *Module, name string, isTest bool) *Project {
	typ := ProjectTypeLibrary
	if isTest {
		typ = ProjectTypeTest
	}
	return &Project{
		module:     m,
		name:       name,
		isTest:     isTest,
		typ:        typ,
		sourceSets: make(map[string]*SourceSet),
		parameters: make(map[string]map[string]any),
	}
}

// Module returns the owning module.
func (p *Project) Module() *Module { return p.module }

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// IsTest reports whether the project lives in the module's test namespace.
func (p *Project) IsTest() bool { return p.isTest }

// String returns "<module>.<project>".
func (p *Project) String() string {
	return p.module.name + "." + p.name
}

// Type returns the project type.
func (p *Project) Type() ProjectType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.typ
}

// SetType sets the project type.
func (p *Project) SetType(t ProjectType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.typ = t
}

// RootDir returns the project root directory relative to the suite root.
func (p *Project) RootDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rootDir
}

// SetRootDir sets the suite relative root directory.
func (p *Project) SetRootDir(dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rootDir = dir
}

// SourceSet returns the named source set, creating it on first access.
func (p *Project) SourceSet(name string) *SourceSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.sourceSets[name]; ok {
		return s
	}
	s := NewSourceSet(name)
	p.sourceSets[name] = s
	return s
}

// HasNonEmptySourceSet reports whether the named source set exists and has files.
func (p *Project) HasNonEmptySourceSet(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.sourceSets[name]
	return ok && s.Len() > 0
}

// SourceSets returns all source sets sorted by name.
func (p *Project) SourceSets() []*SourceSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := slices.Collect(maps.Values(p.sourceSets))
	slices.SortFunc(out, func(a, b *SourceSet) int { return strings.Compare(a.name, b.name) })
	return out
}

// SetParameter stores an opaque value in a toolchain parameter block.
func (p *Project) SetParameter(block, key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.parameters[block]
	if !ok {
		b = make(map[string]any)
		p.parameters[block] = b
	}
	b[key] = value
}

// Parameters returns a copy of the named parameter block, or nil if it does not exist.
func (p *Project) Parameters(block string) map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.parameters[block]
	if !ok {
		return nil
	}
	return maps.Clone(b)
}

// AddReference declares a reference. Duplicates are ignored.
func (p *Project) AddReference(ref Reference) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if slices.Contains(p.references, ref) {
		return
	}
	p.references = append(p.references, ref)
}

// References returns the declared references in declaration order.
func (p *Project) References() []Reference {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.references)
}

// Property returns the string form of a named project property.
func (p *Project) Property(name string) (string, error) {
	if rest, ok := strings.CutPrefix(name, PropertyParamPrefix); ok {
		block, key, _ := strings.Cut(rest, ".")
		p.mu.RLock()
		defer p.mu.RUnlock()
		v, found := p.parameters[block][key]
		if !found {
			return "", nil
		}
		return fmt.Sprint(v), nil
	}

	switch {
	case strings.EqualFold(name, PropertyName):
		return p.name, nil
	case strings.EqualFold(name, PropertyModule):
		return p.module.name, nil
	case strings.EqualFold(name, PropertyType):
		return string(p.Type()), nil
	case strings.EqualFold(name, PropertyRootDir):
		return p.RootDir(), nil
	case strings.EqualFold(name, PropertyVersion):
		return p.module.suite.Version, nil
	default:
		err := zerr.Wrap(ErrUnknownProperty, "failed to read project property")
		return "", zerr.With(zerr.With(err, "property", name), "project", p.String())
	}
}

// SourceSet is an ordered, duplicate-free list of suite relative file paths.
type SourceSet struct {
	name string

	mu    sync.RWMutex
	files []string
	index map[string]struct{}
}

// NewSourceSet creates an empty source set.
func NewSourceSet(name string) *SourceSet {
	return &SourceSet{name: name, index: make(map[string]struct{})}
}

// Name returns the source set name.
func (s *SourceSet) Name() string { return s.name }

// Add appends a file unless it is already present. It reports whether the file was added.
func (s *SourceSet) Add(file string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[file]; ok {
		return false
	}
	s.index[file] = struct{}{}
	s.files = append(s.files, file)
	return true
}

// Files returns the files in insertion order.
func (s *SourceSet) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.files)
}

// Len returns the number of files.
func (s *SourceSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
