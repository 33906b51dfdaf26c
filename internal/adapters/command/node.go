package command

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
)

// NodeID is the unique identifier for the command builder Graft node.
const NodeID graft.ID = "adapter.command"

func init() {
	graft.Register(graft.Node[ports.CommandBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (ports.CommandBuilder, error) {
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(
				domain.HostPlatform(),
				WithCommandCache(cache.EditorState(store)),
			), nil
		},
	})
}
