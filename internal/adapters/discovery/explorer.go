// Package discovery builds the suite model from the src/<module>/<project> directory layout.
package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SuiteExplorer = (*Explorer)(nil)

// Explorer discovers modules, projects and source sets on the local filesystem.
//
// Layout:
//
//	src/<module>/<project>/<source set>/**
//	src/<module>/tests/<project>/<source set>/**
//	src/<module>/<project>/project.yaml
type Explorer struct {
	walker *fs.Walker
	logger ports.Logger
}

// NewExplorer creates a new Explorer.
func NewExplorer(walker *fs.Walker, logger ports.Logger) *Explorer {
	return &Explorer{walker: walker, logger: logger}
}

// Explore implements ports.SuiteExplorer.
func (e *Explorer) Explore(ctx context.Context, cfg *domain.Config) (*domain.Suite, error) {
	suite := domain.NewSuite(cfg.Root)
	suite.Name = cfg.SuiteName
	suite.Version = cfg.SuiteVersion

	srcDir := filepath.Join(cfg.Root, domain.SourceDirName)
	modules, err := subdirectories(srcDir)
	if errors.Is(err, os.ErrNotExist) {
		e.logger.Warn("suite has no source directory", "path", srcDir)
		return suite, nil
	}
	if err != nil {
		return nil, err
	}

	// Register the model serially; source sets are filled concurrently.
	var projects []*domain.Project
	for _, moduleName := range modules {
		module := suite.Module(moduleName)
		found, err := e.exploreModule(module, filepath.Join(srcDir, moduleName))
		if err != nil {
			return nil, err
		}
		projects = append(projects, found...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, p := range projects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.loadProject(cfg.Root, p)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("suite discovered", "modules", len(modules), "projects", len(projects))
	return suite, nil
}

func (e *Explorer) exploreModule(module *domain.Module, dir string) ([]*domain.Project, error) {
	names, err := subdirectories(dir)
	if err != nil {
		return nil, err
	}

	var projects []*domain.Project
	for _, name := range names {
		if !strings.EqualFold(name, domain.TestsDirName) {
			p := module.Project(name)
			p.SetRootDir(filepath.ToSlash(filepath.Join(domain.SourceDirName, module.Name(), name)))
			projects = append(projects, p)
			continue
		}

		tests, err := subdirectories(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for _, testName := range tests {
			p := module.TestProject(testName)
			p.SetRootDir(filepath.ToSlash(filepath.Join(domain.SourceDirName, module.Name(), name, testName)))
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// loadProject reads the project descriptor and fills every source set with suite relative file paths.
func (e *Explorer) loadProject(root string, p *domain.Project) error {
	dir := filepath.Join(root, filepath.FromSlash(p.RootDir()))

	desc, err := readDescriptor(dir)
	if err != nil {
		return err
	}
	if desc != nil {
		if err := desc.apply(p); err != nil {
			return err
		}
	}

	sets, err := subdirectories(dir)
	if err != nil {
		return err
	}
	for _, name := range sets {
		set := p.SourceSet(name)
		for path := range e.walker.WalkFiles(filepath.Join(dir, name), nil) {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return zerr.With(zerr.Wrap(domain.ErrDiscoveryFailed, err.Error()), "path", path)
			}
			set.Add(filepath.ToSlash(rel))
		}
	}
	return nil
}

// subdirectories lists the names of the directories directly below dir, sorted.
func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrDiscoveryFailed, err.Error()), "path", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
