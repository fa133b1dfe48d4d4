package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/core/ports"
)

const NodeID graft.ID = "adapter.script_writer"

func init() {
	graft.Register(graft.Node[ports.ScriptWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptWriter, error) {
			return NewWriter(), nil
		},
	})
}
