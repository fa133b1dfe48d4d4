package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager fronts the memory and file tiers. Memory hits are unconditional
// for the lifetime of the process; file hits are subject to TTL, with a
// grace window that allows serving stale entries when a refresh fails.
type Manager struct {
	store  ports.CacheStore
	logger ports.Logger

	mu  sync.RWMutex
	mem map[string]string
}

// NewManager creates a Manager over the given file store.
func NewManager(store ports.CacheStore, logger ports.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		mem:    make(map[string]string),
	}
}

func memKey(dom domain.CacheDomain, key string) string {
	return string(dom) + "\x00" + key
}

// Get looks up a value, memory tier first. A memory entry is always a hit;
// a file entry is a hit only while fresh. File tier errors degrade to a
// miss.
func (m *Manager) Get(dom domain.CacheDomain, key string, ttl time.Duration) (string, bool) {
	m.mu.RLock()
	value, ok := m.mem[memKey(dom, key)]
	m.mu.RUnlock()
	if ok {
		return value, true
	}

	entry, err := m.store.Get(dom, key)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("cache read failed for %s/%s: %v", dom, key, err))
		return "", false
	}
	if entry == nil {
		return "", false
	}
	entry.TTL = ttl
	if !entry.Fresh(time.Now()) {
		return "", false
	}

	m.mu.Lock()
	m.mem[memKey(dom, key)] = entry.Value
	m.mu.Unlock()
	return entry.Value, true
}

// Put stores a value in both tiers. File tier failures are logged, not
// returned: the memory tier alone still serves the current process.
func (m *Manager) Put(dom domain.CacheDomain, key, value string) {
	m.PutMemory(dom, key, value)

	err := m.store.Put(domain.CacheEntry{
		Key:       key,
		Value:     value,
		CreatedAt: time.Now(),
		Domain:    dom,
	})
	if err != nil {
		m.logger.Warn(fmt.Sprintf("cache write failed for %s/%s: %v", dom, key, err))
	}
}

// PutMemory stores a value in the memory tier only.
func (m *Manager) PutMemory(dom domain.CacheDomain, key, value string) {
	m.mu.Lock()
	m.mem[memKey(dom, key)] = value
	m.mu.Unlock()
}

// GetOrRefresh returns the cached value if fresh, otherwise invokes the
// refresher and stores its result. When the refresh fails and a stale entry
// is still inside the grace window, the stale value is served instead; past
// the grace window the refresh error is fatal.
func (m *Manager) GetOrRefresh(ctx context.Context, dom domain.CacheDomain, key string, ttl, grace time.Duration, refresh ports.Refresher) (string, error) {
	if value, ok := m.Get(dom, key, ttl); ok {
		return value, nil
	}

	stale, err := m.store.Get(dom, key)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("cache read failed for %s/%s: %v", dom, key, err))
		stale = nil
	}

	value, err := refresh.Refresh(ctx, dom, key)
	if err != nil {
		if stale != nil {
			stale.TTL = ttl
			if stale.Usable(time.Now(), grace) {
				m.logger.Warn(fmt.Sprintf("refresh failed for %s/%s, serving stale entry: %v", dom, key, err))
				return stale.Value, nil
			}
		}
		// Join keeps both the sentinel and the refresher's own error
		// reachable through errors.Is.
		return "", zerr.With(
			zerr.With(zerr.Wrap(errors.Join(domain.ErrRefreshFailed, err), "no usable cache fallback"), "domain", string(dom)),
			"key", key,
		)
	}

	m.Put(dom, key, value)
	return value, nil
}

// Purge drops both tiers.
func (m *Manager) Purge() error {
	m.mu.Lock()
	m.mem = make(map[string]string)
	m.mu.Unlock()
	return m.store.Purge()
}
