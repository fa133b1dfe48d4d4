package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	// The wired default is silent; the generate command swaps in a console
	// recorder when progress output is requested.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoop(), nil
		},
	})
}
