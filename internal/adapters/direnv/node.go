package direnv

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/heph2/foxtail/internal/adapters/logger"
	"github.com/heph2/foxtail/internal/core/ports"
)

// NodeID is the unique identifier for the reloader Graft node.
const NodeID graft.ID = "adapter.reloader"

func init() {
	graft.Register(graft.Node[ports.Reloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Reloader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReloader(log), nil
		},
	})
}
