package launcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/command"
	"go.trai.ch/leap/internal/adapters/logger"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
)

// NodeID is the unique identifier for the launcher Graft node.
const NodeID graft.ID = "adapter.launcher"

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, cache.NodeID, command.NodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.CommandBuilder](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(
				domain.HostPlatform(),
				builder,
				cache.ProjectPath(store),
				log,
			), nil
		},
	})
}
