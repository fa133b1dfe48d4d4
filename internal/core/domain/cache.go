package domain

import "time"

// CacheDomain tags a cache entry with the kind of data it holds. Each domain
// derives its key from its own discriminating tuple, not from the whole
// configuration, so unrelated configuration changes never invalidate it.
type CacheDomain string

const (
	// CacheDomainScript holds compiled script text.
	CacheDomainScript CacheDomain = "script"
	// CacheDomainUsage holds shell-sourceable variable assignments produced
	// by the external usage tool. The emitted script sources these files at
	// its own runtime.
	CacheDomainUsage CacheDomain = "usage"
)

// CacheFileName returns the file name used by the persisted tier for a
// domain/key pair. The emitted script addresses usage entries by the same
// name, so this is the single naming authority.
func CacheFileName(dom CacheDomain, key string) string {
	return string(dom) + "-" + key
}

// CacheEntry is one cached value with its freshness metadata.
type CacheEntry struct {
	Key       string
	Value     string
	CreatedAt time.Time
	TTL       time.Duration
	Domain    CacheDomain
}

// Fresh reports whether the entry is within its TTL at the given time.
func (e CacheEntry) Fresh(now time.Time) bool {
	return now.Sub(e.CreatedAt) <= e.TTL
}

// Usable reports whether the entry is still servable as a stale fallback:
// past TTL but within the grace window. A fresh entry is also usable.
func (e CacheEntry) Usable(now time.Time, grace time.Duration) bool {
	return now.Sub(e.CreatedAt) <= e.TTL+grace
}
