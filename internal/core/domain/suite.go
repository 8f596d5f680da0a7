// Package domain contains the core model of a suite and the value types shared by builders and the cache.
package domain

import (
	"slices"
	"strings"
	"sync"
)

// Suite is the root of the model. It owns modules keyed case-insensitively by name.
type Suite struct {
	// Name is the suite name. It defaults to the empty string.
	Name string
	// Version is the optional suite version. Empty means no version.
	Version string
	// Root is the absolute path of the suite root directory.
	Root string

	mu      sync.RWMutex
	modules map[string]*Module
}

// NewSuite creates an empty suite rooted at root.
func NewSuite(root string) *Suite {
	return &Suite{
		Root:    root,
		modules: make(map[string]*Module),
	}
}

// Module returns the module with the given name, creating and registering it on first access.
func (s *Suite) Module(name string) *Module {
	key := foldKey(name)

	s.mu.RLock()
	m, ok := s.modules[key]
	s.mu.RUnlock()
	if ok {
		return m
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.modules[key]; ok {
		return m
	}
	m = newModule(s, name)
	s.modules[key] = m
	return m
}

// HasModule reports whether a module with the given name exists.
func (s *Suite) HasModule(name string) bool {
	_, ok := s.LookupModule(name)
	return ok
}

// LookupModule returns the module with the given name without creating it.
func (s *Suite) LookupModule(name string) (*Module, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.modules[foldKey(name)]
	return m, ok
}

// Modules returns all modules sorted by name.
func (s *Suite) Modules() []*Module {
	s.mu.RLock()
	out := make([]*Module, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, m)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Module) int {
		return strings.Compare(foldKey(a.name), foldKey(b.name))
	})
	return out
}

// Module groups projects and test projects. Both live in separate case-insensitive namespaces.
type Module struct {
	suite *Suite
	name  string

	mu           sync.RWMutex
	projects     map[string]*Project
	testProjects map[string]*Project
}

func newModule(s *Suite, name string) *Module {
	return &Module{
		suite:        s,
		name:         name,
		projects:     make(map[string]*Project),
		testProjects: make(map[string]*Project),
	}
}

// Suite returns the owning suite.
func (m *Module) Suite() *Suite { return m.suite }

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Project returns the project with the given name, creating it on first access.
func (m *Module) Project(name string) *Project {
	return m.getOrCreate(m.projects, name, false)
}

// TestProject returns the test project with the given name, creating it on first access.
func (m *Module) TestProject(name string) *Project {
	return m.getOrCreate(m.testProjects, name, true)
}

func (m *Module) getOrCreate(table map[string]*Project, name string, isTest bool) *Project {
	key := foldKey(name)

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := table[key]; ok {
		return p
	}
	p := newProject(m, name, isTest)
	table[key] = p
	return p
}

// HasProject reports whether a non-test project with the given name exists.
func (m *Module) HasProject(name string) bool {
	_, ok := m.LookupProject(name)
	return ok
}

// LookupProject returns the non-test project with the given name without creating it.
func (m *Module) LookupProject(name string) (*Project, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projects[foldKey(name)]
	return p, ok
}

// LookupProjectOrTestProject searches the projects first and the test projects second.
// It never creates a project.
func (m *Module) LookupProjectOrTestProject(name string) (*Project, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := foldKey(name)
	if p, ok := m.projects[key]; ok {
		return p, true
	}
	p, ok := m.testProjects[key]
	return p, ok
}

// Projects returns the non-test projects sorted by name.
func (m *Module) Projects() []*Project {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedProjects(m.projects)
}

// TestProjects returns the test projects sorted by name.
func (m *Module) TestProjects() []*Project {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedProjects(m.testProjects)
}

func sortedProjects(table map[string]*Project) []*Project {
	out := make([]*Project, 0, len(table))
	for _, p := range table {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Project) int {
		return strings.Compare(foldKey(a.name), foldKey(b.name))
	})
	return out
}

func foldKey(name string) string {
	return strings.ToLower(name)
}
