// Package progrock provides a ports.Tracer that records builders as progrock vertices.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/keel/internal/core/ports"
)

var (
	_ ports.Tracer = (*Tracer)(nil)
	_ ports.Span   = (*Span)(nil)
)

// Tracer implements ports.Tracer using a progrock recorder.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer recording to an in-memory tape.
func New() *Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a vertex identified by the digest of name.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	span := &Span{vertex: t.rec.Vertex(digest.FromString(name), name)}
	for key, value := range cfg.Attributes {
		span.SetAttribute(key, value)
	}
	return ctx, span
}

// EmitPlan records a debug message with the number of planned builders.
func (t *Tracer) EmitPlan(_ context.Context, builderNames []string) {
	t.rec.Debug(fmt.Sprintf("planned %d builders", len(builderNames)))
}

// Summary counts the recorded vertices.
type Summary struct {
	Total   int
	Cached  int
	Errored int
}

// Summary reports the vertex counts. It returns false when the writer is not a tape.
func (t *Tracer) Summary() (Summary, bool) {
	tape, ok := t.w.(*progrock.Tape)
	if !ok {
		return Summary{}, false
	}
	return Summary{
		Total:   tape.TotalCount(),
		Cached:  tape.CachedCount(),
		Errored: tape.ErroredCount(),
	}, true
}

// Close completes the recording and closes the writer.
func (t *Tracer) Close() error {
	t.rec.Complete()
	return t.rec.Close()
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write sends p to the vertex stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// SetAttribute writes the attribute as a key=value line to the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError remembers err until the span ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// MarkCached marks the vertex as a cache hit.
func (s *Span) MarkCached() {
	s.vertex.Cached()
}

// End marks the vertex as finished, failed if an error was recorded.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	s.vertex.Done(err)
}
