package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/keel/internal/adapters/logger"
	"go.trai.ch/keel/internal/core/ports"
)

const (
	// BackendNodeID is the unique identifier for the selectable tracer Graft node.
	BackendNodeID graft.ID = "adapter.telemetry.backend"
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[ports.TracerBackend]{
		ID:        BackendNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TracerBackend, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(log), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BackendNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			backend, err := graft.Dep[ports.TracerBackend](ctx)
			if err != nil {
				return nil, err
			}
			return backend, nil
		},
	})
}
