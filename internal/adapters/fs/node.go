package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skel.dev/skel/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner Graft node.
const NodeID graft.ID = "adapter.provisioner"

func init() {
	graft.Register(graft.Node[ports.Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Provisioner, error) {
			return NewProvisioner(), nil
		},
	})
}
