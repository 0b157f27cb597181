package pkgconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the library resolver Graft node.
const NodeID graft.ID = "adapter.pkgconfig"

func init() {
	graft.Register(graft.Node[ports.LibraryResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.LibraryResolver, error) {
			return NewResolver(), nil
		},
	})
}
