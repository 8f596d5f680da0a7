// Package buildctx holds the per-run graph of builders, their dependency edges and their results.
package buildctx

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildContext = (*Context)(nil)

type node struct {
	builder ports.Builder
	deps    []ports.Builder
	results domain.TargetPathSet
	done    bool

	// owner is set while the node's dependencies are being expanded.
	owner *expansion
	// ready is closed once deps are recorded or the claim is rolled back.
	ready chan struct{}
}

// expansion is one chain of nested registrations running on a single goroutine.
type expansion struct {
	waitingOn string
}

// scope is the view of a Context handed to expand. Registrations made through it
// belong to the expansion that created it.
type scope struct {
	*Context
	exp *expansion
}

// Register implements ports.BuildContext.
func (s *scope) Register(b ports.Builder, expand func(ports.BuildContext) ([]ports.Builder, error)) error {
	return s.register(b, expand, s.exp)
}

// Context is a build graph keyed by builder identity. It is safe for concurrent use.
type Context struct {
	mu             sync.RWMutex
	nodes          map[string]*node
	order          []string
	dependents     map[string][]string
	executionOrder []string
}

// New creates an empty build context.
func New() *Context {
	return &Context{
		nodes: make(map[string]*node),
	}
}

// AddBuilder implements ports.BuildContext.
func (c *Context) AddBuilder(b ports.Builder, deps []ports.Builder) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := b.Identity()
	if _, exists := c.nodes[id]; exists {
		return nil
	}
	c.insert(id, &node{builder: b, deps: slices.Clone(deps)})
	return nil
}

// Register implements ports.BuildContext. The claim is taken before expand runs,
// so an identity is expanded once even when equal builders register concurrently.
// A concurrent registrant of a claimed identity waits until the claim is settled; a
// registration that would wait on its own expansion returns at once and leaves the
// cycle to Validate.
func (c *Context) Register(b ports.Builder, expand func(ports.BuildContext) ([]ports.Builder, error)) error {
	return c.register(b, expand, &expansion{})
}

func (c *Context) register(
	b ports.Builder,
	expand func(ports.BuildContext) ([]ports.Builder, error),
	exp *expansion,
) error {
	id := b.Identity()

	c.mu.Lock()
	for {
		existing, ok := c.nodes[id]
		if !ok {
			break
		}
		if existing.owner == nil || c.waitsOn(existing.owner, exp) {
			c.mu.Unlock()
			return nil
		}

		exp.waitingOn = id
		ready := existing.ready
		c.mu.Unlock()
		<-ready
		c.mu.Lock()
		exp.waitingOn = ""
	}
	n := &node{builder: b, owner: exp, ready: make(chan struct{})}
	c.insert(id, n)
	c.mu.Unlock()

	deps, err := expand(&scope{Context: c, exp: exp})

	c.mu.Lock()
	defer c.mu.Unlock()
	defer close(n.ready)
	n.owner = nil
	if err != nil {
		delete(c.nodes, id)
		c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
		return err
	}
	n.deps = deps
	return nil
}

// waitsOn reports whether owner is exp or is blocked, directly or through other
// expansions, on a node exp is expanding. Callers hold c.mu.
func (c *Context) waitsOn(owner, exp *expansion) bool {
	for range len(c.nodes) + 1 {
		if owner == exp {
			return true
		}
		if owner.waitingOn == "" {
			return false
		}
		n, ok := c.nodes[owner.waitingOn]
		if !ok || n.owner == nil {
			return false
		}
		owner = n.owner
	}
	return false
}

func (c *Context) insert(id string, n *node) {
	c.nodes[id] = n
	c.order = append(c.order, id)
	c.executionOrder = nil
}

// Contains implements ports.BuildContext.
func (c *Context) Contains(b ports.Builder) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.nodes[b.Identity()]
	return ok
}

// Dependencies implements ports.BuildContext.
func (c *Context) Dependencies(b ports.Builder) []ports.Builder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[b.Identity()]
	if !ok {
		return nil
	}
	return slices.Clone(n.deps)
}

// Results implements ports.BuildContext.
func (c *Context) Results(b ports.Builder) (domain.TargetPathSet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[b.Identity()]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuilderNotRegistered, "failed to read results"), "builder", b.String())
	}
	if !n.done {
		return nil, zerr.With(zerr.Wrap(domain.ErrResultsNotAvailable, "failed to read results"), "builder", b.String())
	}
	return maps.Clone(n.results), nil
}

// SetResults implements ports.BuildContext.
func (c *Context) SetResults(b ports.Builder, results domain.TargetPathSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.nodes[b.Identity()]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrBuilderNotRegistered, "failed to record results"), "builder", b.String())
	}
	if results == nil {
		results = domain.NewTargetPathSet()
	}
	n.results = maps.Clone(results)
	n.done = true
	return nil
}

// Len returns the number of registered builders.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.nodes)
}

// Builders returns the registered builders in registration order.
func (c *Context) Builders() []ports.Builder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ports.Builder, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.nodes[id].builder)
	}
	return out
}

// Dependents returns the registered builders that depend on b. It requires a successful Validate.
func (c *Context) Dependents(b ports.Builder) []ports.Builder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := c.dependents[b.Identity()]
	out := make([]ports.Builder, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.nodes[id].builder)
	}
	return out
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order used by Walk.
func (c *Context) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := make([]string, 0, len(c.nodes))
	dependents := make(map[string][]string, len(c.nodes))
	visited := make(map[string]int, len(c.nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		visited[id] = 1
		path = append(path, id)

		n := c.nodes[id]
		seen := make(map[string]bool, len(n.deps))
		for _, dep := range n.deps {
			depID := dep.Identity()
			if _, exists := c.nodes[depID]; !exists {
				err := zerr.Wrap(domain.ErrMissingDependency, "invalid build graph")
				return zerr.With(zerr.With(err, "builder", n.builder.String()), "dependency", dep.String())
			}
			if !seen[depID] {
				seen[depID] = true
				dependents[depID] = append(dependents[depID], id)
			}
			switch visited[depID] {
			case 1:
				return c.buildCycleError(path, depID)
			case 0:
				if err := visit(depID); err != nil {
					return err
				}
			}
		}

		visited[id] = 2
		path = path[:len(path)-1]
		order = append(order, id)
		return nil
	}

	// Registration order keeps the walk deterministic.
	for _, id := range c.order {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	c.executionOrder = order
	c.dependents = dependents
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (c *Context) buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	names := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		names = append(names, c.nodes[id].builder.String())
	}
	names = append(names, c.nodes[dep].builder.String())
	err := zerr.Wrap(domain.ErrCycleDetected, "invalid build graph")
	return zerr.With(err, "cycle", strings.Join(names, " -> "))
}

// Walk returns an iterator that yields builders in execution order, dependencies first.
// It assumes Validate has been called and returned nil.
func (c *Context) Walk() iter.Seq[ports.Builder] {
	c.mu.RLock()
	order := slices.Clone(c.executionOrder)
	c.mu.RUnlock()

	return func(yield func(ports.Builder) bool) {
		for _, id := range order {
			c.mu.RLock()
			b := c.nodes[id].builder
			c.mu.RUnlock()
			if !yield(b) {
				return
			}
		}
	}
}
