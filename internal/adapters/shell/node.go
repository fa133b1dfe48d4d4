package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/adapters/logger"
	"github.com/statline/statline/internal/core/ports"
)

const NodeID graft.ID = "adapter.refresher_factory"

func init() {
	graft.Register(graft.Node[ports.RefresherFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RefresherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Factory(log), nil
		},
	})
}
