package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/keel/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/discovery" //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			scheduler.NodeID,
			telemetry.BackendNodeID,
			metrics.NodeID,
			logger.NodeID,
			fs.WalkerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	explorer, err := graft.Dep[ports.SuiteExplorer](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.TracerBackend](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, explorer, sched, tracer, m, log, walker), nil
}
