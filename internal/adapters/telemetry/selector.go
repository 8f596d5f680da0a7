package telemetry

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/keel/internal/adapters/telemetry/progrock"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TracerBackend = (*Selector)(nil)

// Selector forwards to the tracer chosen by Use. It starts as a no-op tracer.
type Selector struct {
	logger ports.Logger

	mu       sync.RWMutex
	active   ports.Tracer
	shutdown func(context.Context) error
}

// NewSelector creates a Selector forwarding to a NoOpTracer.
func NewSelector(logger ports.Logger) *Selector {
	return &Selector{logger: logger, active: NewNoOpTracer()}
}

// Use replaces the active tracer. The previous one is not shut down.
func (s *Selector) Use(kind string) error {
	var (
		tracer   ports.Tracer
		shutdown func(context.Context) error
	)

	switch kind {
	case domain.TelemetryOTel:
		provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(s.logger)))
		tracer, shutdown = NewOTelTracer(provider), provider.Shutdown
	case domain.TelemetryProgrock:
		rec := progrock.New()
		tracer = rec
		shutdown = func(context.Context) error {
			if summary, ok := rec.Summary(); ok {
				s.logger.Info("build summary",
					"builders", summary.Total, "cached", summary.Cached, "failed", summary.Errored)
			}
			return rec.Close()
		}
	case domain.TelemetryNone, "":
		tracer = NewNoOpTracer()
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown telemetry backend"), "telemetry", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active, s.shutdown = tracer, shutdown
	return nil
}

// Shutdown flushes the active tracer and falls back to the no-op tracer.
func (s *Selector) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	shutdown := s.shutdown
	s.active, s.shutdown = NewNoOpTracer(), nil
	s.mu.Unlock()

	if shutdown == nil {
		return nil
	}
	return shutdown(ctx)
}

// Start implements ports.Tracer.
func (s *Selector) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	s.mu.RLock()
	tracer := s.active
	s.mu.RUnlock()
	return tracer.Start(ctx, name, opts...)
}

// EmitPlan implements ports.Tracer.
func (s *Selector) EmitPlan(ctx context.Context, builderNames []string) {
	s.mu.RLock()
	tracer := s.active
	s.mu.RUnlock()
	tracer.EmitPlan(ctx, builderNames)
}
