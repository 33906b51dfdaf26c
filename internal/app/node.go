package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/launcher"
	"go.trai.ch/leap/internal/adapters/logger"
	"go.trai.ch/leap/internal/adapters/registry"
	"go.trai.ch/leap/internal/adapters/telemetry"
	"go.trai.ch/leap/internal/core/ports"
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
			logger.NodeID,
			cache.NodeID,
			registry.NodeID,
			launcher.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			editors, err := graft.Dep[ports.EditorRegistry](ctx)
			if err != nil {
				return nil, err
			}
			launch, err := graft.Dep[ports.Launcher](ctx)
			if err != nil {
				return nil, err
			}
			timers, err := graft.Dep[*telemetry.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			// Route spans (one per launch) into the timer aggregates.
			otel.SetTracerProvider(telemetry.NewProvider(timers))

			return New(editors, launch, store, timers, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			cache.NodeID,
			registry.NodeID,
			launcher.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	editors, err := graft.Dep[ports.EditorRegistry](ctx)
	if err != nil {
		return nil, err
	}
	launch, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[*cache.Store](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Registry: editors,
		Launcher: launch,
		Store:    store,
	}, nil
}
