// Package domain contains the core value types of the statline generator.
package domain

import (
	"slices"
	"time"
)

// FeatureID identifies one renderable status-line feature.
type FeatureID string

const (
	// FeatureDirectory renders the current workspace directory.
	FeatureDirectory FeatureID = "directory"
	// FeatureGit renders the version-control branch and dirty state.
	FeatureGit FeatureID = "git"
	// FeatureModel renders the active model display name.
	FeatureModel FeatureID = "model"
	// FeatureSession renders session cost and duration telemetry.
	FeatureSession FeatureID = "session"
	// FeatureSystem renders CPU and memory utilization.
	FeatureSystem FeatureID = "system"
	// FeatureUsage renders third-party usage data (burn rate, projections).
	FeatureUsage FeatureID = "usage"
)

// RenderOrder is the canonical ordering of features in the emitted script.
// Assembly order is a function of the enabled feature set, never of the
// order features were listed in the configuration.
var RenderOrder = []FeatureID{
	FeatureDirectory,
	FeatureGit,
	FeatureModel,
	FeatureSession,
	FeatureSystem,
	FeatureUsage,
}

// KnownFeature reports whether id names a feature this generator understands.
func KnownFeature(id FeatureID) bool {
	return slices.Contains(RenderOrder, id)
}

// Theme selects the color palette of the emitted script.
type Theme string

const (
	// ThemeDark is the default palette for dark terminals.
	ThemeDark Theme = "dark"
	// ThemeLight is the palette for light terminals.
	ThemeLight Theme = "light"
	// ThemeMono disables color entirely.
	ThemeMono Theme = "mono"
)

// KnownTheme reports whether t is a supported theme.
func KnownTheme(t Theme) bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeMono:
		return true
	default:
		return false
	}
}

// Thresholds holds the system-monitoring alert levels, in whole percent.
// A zero value disables the corresponding alert coloring.
type Thresholds struct {
	CPUPercent    int
	MemoryPercent int
}

// Integrations holds toggles for optional external data sources.
type Integrations struct {
	// Usage enables the third-party usage data integration.
	Usage bool
	// UsageCommand is the external tool invoked to refresh usage data. It is
	// split into argv without a shell; single and double quotes group words.
	UsageCommand string
}

// DefaultUsageCommand is the usage tool invoked when none is configured.
const DefaultUsageCommand = "ccusage"

// Tunables holds the externally configurable timing parameters.
// They are deliberate hooks: the defaults are conservative and a host may
// tighten or loosen them without touching the generator.
type Tunables struct {
	// CacheTTL is how long a file-cache entry is considered fresh.
	CacheTTL time.Duration
	// CacheGrace is the window past CacheTTL during which a stale entry is
	// still servable as a fallback for a failed refresh.
	CacheGrace time.Duration
	// MinRenderInterval rate-limits the emitted script itself. Zero disables
	// the limiter.
	MinRenderInterval time.Duration
}

// DefaultTunables returns the default timing parameters.
func DefaultTunables() Tunables {
	return Tunables{
		CacheTTL:          5 * time.Minute,
		CacheGrace:        time.Hour,
		MinRenderInterval: 0,
	}
}

// Config is the immutable input of the generation pipeline. It is constructed
// once per invocation and flows read-only through every stage.
type Config struct {
	// Features is the enabled feature set, stored sorted and deduplicated so
	// that equal sets compare and hash identically regardless of input order.
	Features []FeatureID

	Theme  Theme
	Colors bool
	Emoji  bool
	Debug  bool

	Integrations Integrations
	Thresholds   Thresholds
	Tunables     Tunables
}

// NewConfig builds a Config with a canonicalized feature list. Unknown
// feature identifiers are kept as-is; encoders skip them silently.
func NewConfig(features []FeatureID, theme Theme) Config {
	return Config{
		Features: canonicalizeFeatures(features),
		Theme:    theme,
		Colors:   true,
		Tunables: DefaultTunables(),
	}
}

// Enabled reports whether the given feature is part of the enabled set.
func (c Config) Enabled(id FeatureID) bool {
	_, ok := slices.BinarySearch(c.Features, id)
	return ok
}

// WithFeatures returns a copy of c with the given canonicalized feature set.
func (c Config) WithFeatures(features []FeatureID) Config {
	c.Features = canonicalizeFeatures(features)
	return c
}

func canonicalizeFeatures(features []FeatureID) []FeatureID {
	if len(features) == 0 {
		return nil
	}
	sorted := make([]FeatureID, len(features))
	copy(sorted, features)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
