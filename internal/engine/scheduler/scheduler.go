package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/engine/buildctx"
	"go.trai.ch/zerr"
)

// BuilderStatus represents the status of a builder within a run.
type BuilderStatus string

const (
	// StatusPending indicates the builder is waiting for its dependencies.
	StatusPending BuilderStatus = "Pending"
	// StatusRunning indicates the builder is currently executing.
	StatusRunning BuilderStatus = "Running"
	// StatusCompleted indicates the builder has finished successfully.
	StatusCompleted BuilderStatus = "Completed"
	// StatusFailed indicates the builder failed.
	StatusFailed BuilderStatus = "Failed"
)

// Scheduler executes the builders of a build context in dependency order.
type Scheduler struct {
	tracer ports.Tracer
	logger ports.Logger

	mu     sync.RWMutex
	status map[string]BuilderStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(tracer ports.Tracer, logger ports.Logger) *Scheduler {
	return &Scheduler{
		tracer: tracer,
		logger: logger,
		status: make(map[string]BuilderStatus),
	}
}

// Status returns the status of the builder equal to b in the last run.
func (s *Scheduler) Status(b ports.Builder) BuilderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[b.Identity()]
}

func (s *Scheduler) updateStatus(id string, status BuilderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[id] = status
}

// Run validates the build context and executes every builder once its dependencies
// have produced results. At most parallelism builders run at the same time; a value
// below one means one per CPU. The first failure stops scheduling of new builders.
func (s *Scheduler) Run(ctx context.Context, bc *buildctx.Context, parallelism int) error {
	if err := bc.Validate(); err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := s.newRunState(runCtx, cancel, bc, parallelism)

	planned := make([]string, 0, len(state.order))
	for _, b := range state.order {
		planned = append(planned, b.String())
	}
	s.tracer.EmitPlan(ctx, planned)

	err := state.runExecutionLoop()
	if ctx.Err() != nil {
		err = errors.Join(err, ctx.Err())
	}
	return err
}

type result struct {
	builder ports.Builder
	outputs domain.TargetPathSet
	err     error
}

type runState struct {
	s           *Scheduler
	bc          *buildctx.Context
	ctx         context.Context
	cancel      context.CancelFunc
	done        <-chan struct{}
	order       []ports.Builder
	inDegree    map[string]int
	ready       []ports.Builder
	active      int
	parallelism int
	resultsCh   chan result
	errs        error
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	cancel context.CancelFunc,
	bc *buildctx.Context,
	parallelism int,
) *runState {
	state := &runState{
		s:           s,
		bc:          bc,
		ctx:         ctx,
		cancel:      cancel,
		done:        ctx.Done(),
		inDegree:    make(map[string]int, bc.Len()),
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
	}

	s.mu.Lock()
	s.status = make(map[string]BuilderStatus, bc.Len())
	s.mu.Unlock()

	for b := range bc.Walk() {
		id := b.Identity()
		state.order = append(state.order, b)
		seen := make(map[string]bool)
		for _, dep := range bc.Dependencies(b) {
			seen[dep.Identity()] = true
		}
		state.inDegree[id] = len(seen)
		if len(seen) == 0 {
			state.ready = append(state.ready, b)
		}
		s.updateStatus(id, StatusPending)
	}
	return state
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) runExecutionLoop() error {
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return state.errs
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.done:
			// Stop selecting on a closed channel while running builders drain.
			state.done = nil
		}
	}
	return state.errs
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		b := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(b.Identity(), StatusRunning)
		go state.executeBuilder(b)
	}
}

func (state *runState) executeBuilder(b ports.Builder) {
	// The span is ended before the result is sent so that it is recorded
	// by the time the loop observes completion.
	res := func() result {
		ctx, span := state.s.tracer.Start(state.ctx, b.String(), ports.WithAttribute("keel.builder", b.Kind()))
		defer span.End()
		ctx = ports.ContextWithSpan(ctx, span)

		outputs, err := b.Run(ctx, state.bc)
		if err != nil {
			span.RecordError(err)
			return result{builder: b, err: err}
		}
		return result{builder: b, outputs: outputs}
	}()

	state.resultsCh <- res
}

func (state *runState) handleResult(res result) {
	state.active--
	id := res.builder.Identity()

	err := res.err
	if err == nil {
		err = state.bc.SetResults(res.builder, res.outputs)
	}
	if err != nil {
		enhancedErr := zerr.With(zerr.Wrap(err, domain.ErrBuilderFailed.Error()), "builder", res.builder.String())
		state.errs = errors.Join(state.errs, enhancedErr)
		if !errors.Is(err, context.Canceled) {
			state.s.logger.Error(enhancedErr)
		}
		state.s.updateStatus(id, StatusFailed)
		state.cancel()
		return
	}

	state.s.updateStatus(id, StatusCompleted)
	state.s.logger.Debug("builder finished", "builder", res.builder.String(), "outputs", res.outputs.Len())

	for _, dep := range state.bc.Dependents(res.builder) {
		depID := dep.Identity()
		state.inDegree[depID]--
		if state.inDegree[depID] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}
