package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/adapters/template"  //nolint:depguard // Wired in app layer
	"github.com/statline/statline/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.NodeID,
			cache.ManagerNodeID,
			template.NodeID,
			shell.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telem, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			manager, err := graft.Dep[*cache.Manager](ctx)
			if err != nil {
				return nil, err
			}

			templates, err := graft.Dep[*template.Table](ctx)
			if err != nil {
				return nil, err
			}

			refreshers, err := graft.Dep[ports.RefresherFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, telem, manager, templates, refreshers), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			fs.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ScriptWriter](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		ScriptWriter: writer,
	}, nil
}
