package template

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/adapters/cache" //nolint:depguard // Wired in adapter node
)

// NodeID is the unique identifier for the template table Graft node.
const NodeID graft.ID = "adapter.template_table"

func init() {
	graft.Register(graft.Node[*Table]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.ManagerNodeID,
		},
		Run: func(ctx context.Context) (*Table, error) {
			manager, err := graft.Dep[*cache.Manager](ctx)
			if err != nil {
				return nil, err
			}
			return New(manager), nil
		},
	})
}
