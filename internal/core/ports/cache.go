package ports

import "github.com/statline/statline/internal/core/domain"

// CacheStore defines the persisted cache tier. Implementations degrade I/O
// failures to miss semantics: callers always re-run the expensive path when
// the store cannot answer.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// Get retrieves the entry for a key within a domain.
	// Returns nil, nil when absent.
	Get(dom domain.CacheDomain, key string) (*domain.CacheEntry, error)

	// Put stores an entry, atomically superseding any prior value.
	Put(entry domain.CacheEntry) error

	// Purge removes every entry of every domain.
	Purge() error
}
