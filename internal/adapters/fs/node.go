package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/heph2/foxtail/internal/core/ports"
)

// NodeID is the unique identifier for the timestamps Graft node.
const NodeID graft.ID = "adapter.timestamps"

func init() {
	graft.Register(graft.Node[ports.Timestamps]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Timestamps, error) {
			return NewTimestamps(), nil
		},
	})
}
