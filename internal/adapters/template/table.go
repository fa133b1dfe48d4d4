// Package template implements the precompiled-script table for well-known
// configurations.
package template

import (
	"time"

	"github.com/statline/statline/internal/adapters/cache"
	"github.com/statline/statline/internal/core/domain"
)

// Script text is content-addressed and version-salted, so an entry can never
// describe the wrong script. The TTL only bounds how long orphaned files from
// removed table entries linger on disk.
const entryTTL = 30 * 24 * time.Hour

// Table serves precompiled script text for a fixed set of common
// configurations. It holds no correctness logic of its own: entries are
// primed from full pipeline runs and the verify command recompiles every
// entry to prove equivalence.
type Table struct {
	manager *cache.Manager
	keys    map[string]struct{}
}

// New creates a Table over the given cache manager.
func New(manager *cache.Manager) *Table {
	t := &Table{
		manager: manager,
		keys:    make(map[string]struct{}),
	}
	for _, cfg := range WellKnown() {
		t.keys[cache.ScriptKey(cfg)] = struct{}{}
	}
	return t
}

// WellKnown returns the configurations the table precompiles. The slice is
// freshly allocated on each call.
func WellKnown() []domain.Config {
	defaultFeatures := []domain.FeatureID{
		domain.FeatureDirectory,
		domain.FeatureGit,
		domain.FeatureModel,
		domain.FeatureSession,
	}

	dark := domain.NewConfig(defaultFeatures, domain.ThemeDark)
	light := domain.NewConfig(defaultFeatures, domain.ThemeLight)
	minimal := domain.NewConfig([]domain.FeatureID{
		domain.FeatureDirectory,
		domain.FeatureGit,
	}, domain.ThemeDark)

	return []domain.Config{dark, light, minimal}
}

// Lookup returns the precompiled script text for a configuration. Misses for
// configurations outside the table, and for table entries not yet primed.
func (t *Table) Lookup(cfg domain.Config) (string, bool) {
	key := cache.ScriptKey(cfg)
	if _, ok := t.keys[key]; !ok {
		return "", false
	}
	return t.manager.Get(domain.CacheDomainScript, key, entryTTL)
}

// Prime stores compiled script text for a configuration. Configurations
// outside the table are ignored.
func (t *Table) Prime(cfg domain.Config, text string) {
	key := cache.ScriptKey(cfg)
	if _, ok := t.keys[key]; !ok {
		return
	}
	t.manager.Put(domain.CacheDomainScript, key, text)
}

// Contains reports whether a configuration is part of the table.
func (t *Table) Contains(cfg domain.Config) bool {
	_, ok := t.keys[cache.ScriptKey(cfg)]
	return ok
}
