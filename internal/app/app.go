// Package app implements the application layer for keel.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.trai.ch/keel/internal/adapters/cache"    //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/protocol" //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/engine/buildctx"
	"go.trai.ch/keel/internal/engine/builders"
	"go.trai.ch/keel/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// AttrRunID is the span attribute carrying the build run id.
const AttrRunID = "keel.run_id"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	explorer     ports.SuiteExplorer
	scheduler    *scheduler.Scheduler
	tracer       ports.TracerBackend
	metrics      ports.Metrics
	logger       ports.Logger
	walker       *fs.Walker
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	explorer ports.SuiteExplorer,
	sched *scheduler.Scheduler,
	tracer ports.TracerBackend,
	metrics ports.Metrics,
	log ports.Logger,
	walker *fs.Walker,
) *App {
	return &App{
		configLoader: loader,
		explorer:     explorer,
		scheduler:    sched,
		tracer:       tracer,
		metrics:      metrics,
		logger:       log,
		walker:       walker,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	NoCache bool
	// Parallelism overrides the configured parallelism when above zero.
	Parallelism int
}

// BuildReport summarizes a finished build.
type BuildReport struct {
	RunID    string
	Suite    string
	Builders int
	Outputs  domain.TargetPathSet
}

// Build discovers the suite under root and builds every project that has content.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Build(ctx context.Context, root string, opts BuildOptions) (report *BuildReport, err error) {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Select the tracer for this run
	if err := a.tracer.Use(cfg.Telemetry); err != nil {
		return nil, err
	}
	defer func() {
		if shutdownErr := a.tracer.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			a.logger.Warn("failed to shut down tracer", "error", shutdownErr.Error())
		}
	}()

	runID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute(AttrRunID, runID))
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	a.logger.Info("starting build", "run", runID, "suite", cfg.SuiteName)

	// 3. Discover the suite
	suite, err := a.explorer.Explore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 4. Open the roots
	suiteRoot, err := fs.NewLocalDirectory(cfg.Root, a.walker)
	if err != nil {
		return nil, err
	}
	targetRoot, err := openRoot(cfg.TargetDir, a.walker)
	if err != nil {
		return nil, err
	}
	cacheRoot, err := openRoot(cfg.CacheDir, a.walker)
	if err != nil {
		return nil, err
	}

	// 5. Assemble the cache and the builder factory
	serializer, err := protocol.New(cfg.Protocol)
	if err != nil {
		return nil, err
	}
	buildCache := cache.NewFileBuildCache(
		cacheRoot,
		serializer,
		cache.SuffixPolicy(cfg.IgnorableSuffixes...),
		a.logger,
		a.metrics,
	)
	factory := builders.NewContentFactory(
		fs.NewHasher(suiteRoot, 0),
		suiteRoot,
		targetRoot,
		buildCache,
		a.logger,
		a.metrics,
		builders.WithNoCache(opts.NoCache),
	)

	// 6. Populate the build context
	bc := buildctx.New()
	rootBuilder, err := factory.AddToContext(bc, projectsOf(suite))
	if err != nil {
		return nil, err
	}

	report = &BuildReport{
		RunID:    runID,
		Suite:    cfg.SuiteName,
		Builders: bc.Len(),
		Outputs:  domain.NewTargetPathSet(),
	}
	if rootBuilder == nil {
		a.logger.Info("nothing to build")
		return report, a.flushMetrics(cfg)
	}

	// 7. Execute
	parallelism := cfg.Parallelism
	if opts.Parallelism > 0 {
		parallelism = opts.Parallelism
	}
	if err := a.scheduler.Run(ctx, bc, parallelism); err != nil {
		return nil, errors.Join(domain.ErrBuildExecutionFailed, err, a.flushMetrics(cfg))
	}

	outputs, err := bc.Results(rootBuilder)
	if err != nil {
		return nil, err
	}
	report.Outputs = outputs
	a.logger.Info("build finished", "run", runID, "builders", report.Builders, "outputs", outputs.Len())

	return report, a.flushMetrics(cfg)
}

func (a *App) flushMetrics(cfg *domain.Config) error {
	return a.metrics.Flush(cfg.MetricsFile)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Target bool
	Cache  bool
}

// Clean removes the target and cache roots of the suite under root.
func (a *App) Clean(_ context.Context, root string, options CleanOptions) error {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	// Helper to remove a directory and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name), "path", path)
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Target {
		remove(cfg.TargetDir, "target directory")
	}

	if options.Cache {
		remove(cfg.CacheDir, "build cache")
	}

	return errs
}

func openRoot(path string, walker *fs.Walker) (*fs.LocalDirectory, error) {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFileCreateFailed, err.Error()), "path", path)
	}
	return fs.NewLocalDirectory(path, walker)
}

// projectsOf lists every project and test project of the suite in module order.
func projectsOf(suite *domain.Suite) []*domain.Project {
	var projects []*domain.Project
	for _, m := range suite.Modules() {
		projects = append(projects, m.Projects()...)
		projects = append(projects, m.TestProjects()...)
	}
	return projects
}
