package ports

import (
	"context"

	"github.com/statline/statline/internal/core/domain"
)

// Refresher produces a fresh value for a cache domain from its external
// source (an external tool invocation). A failed refresh lets the cache
// layer fall back to a stale-but-usable entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=refresher.go -destination=mocks/mock_refresher.go -package=mocks
type Refresher interface {
	// Refresh computes a fresh value for the given domain and key.
	Refresh(ctx context.Context, dom domain.CacheDomain, key string) (string, error)
}

// RefresherFactory builds a Refresher bound to an external command line.
type RefresherFactory func(command string) Refresher

// RefreshFunc adapts a function to the Refresher interface.
type RefreshFunc func(ctx context.Context, dom domain.CacheDomain, key string) (string, error)

// Refresh implements Refresher.
func (f RefreshFunc) Refresh(ctx context.Context, dom domain.CacheDomain, key string) (string, error) {
	return f(ctx, dom, key)
}
