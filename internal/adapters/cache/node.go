package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/statline/statline/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// StoreNodeID is the unique identifier for the file store Graft node.
	StoreNodeID graft.ID = "adapter.cache_store"
	// ManagerNodeID is the unique identifier for the cache manager Graft node.
	ManagerNodeID graft.ID = "adapter.cache_manager"
)

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheStore, error) {
			dir, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			return NewFileStore(dir), nil
		},
	})

	graft.Register(graft.Node[*Manager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			StoreNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(store, log), nil
		},
	})
}

// DefaultDir resolves the cache directory the same way the emitted script
// does: XDG_CACHE_HOME when set, falling back to ~/.cache.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "statline"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".cache", "statline"), nil
}
