package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/statline/statline/internal/build"
	"github.com/statline/statline/internal/core/domain"
)

// ScriptKey returns the script-domain cache key for a configuration. The
// generator version salts the key so an upgraded binary never serves script
// text compiled by an older pipeline.
func ScriptKey(cfg domain.Config) string {
	h := xxhash.New()
	_, _ = h.WriteString(domain.ScriptTupleOf(cfg).Hash())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(build.Version)
	_, _ = h.Write([]byte{0})
	return fmt.Sprintf("%016x", h.Sum64())
}

// UsageKey returns the usage-domain cache key. It is deliberately unsalted:
// the sourceable-assignments file format is a stable contract between the
// refresher and every emitted script.
func UsageKey(cfg domain.Config) string {
	return domain.UsageTupleOf(cfg).Hash()
}
