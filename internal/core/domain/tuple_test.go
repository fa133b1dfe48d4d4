package domain_test

import (
	"testing"
	"time"

	"github.com/statline/statline/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() domain.Config {
	cfg := domain.NewConfig([]domain.FeatureID{
		domain.FeatureDirectory,
		domain.FeatureGit,
		domain.FeatureModel,
	}, domain.ThemeDark)
	cfg.Integrations.Usage = true
	return cfg
}

func TestScriptTuple_HashStable(t *testing.T) {
	cfg := baseConfig()
	h1 := domain.ScriptTupleOf(cfg).Hash()
	h2 := domain.ScriptTupleOf(cfg).Hash()
	require.Equal(t, h1, h2)
	require.Len(t, h1, 16)
}

func TestScriptTuple_OrderIndependent(t *testing.T) {
	a := baseConfig()
	b := baseConfig().WithFeatures([]domain.FeatureID{
		domain.FeatureModel,
		domain.FeatureDirectory,
		domain.FeatureGit,
	})

	assert.Equal(t, domain.ScriptTupleOf(a).Hash(), domain.ScriptTupleOf(b).Hash())
}

func TestScriptTuple_IgnoresNonDiscriminatingFields(t *testing.T) {
	a := baseConfig()
	b := baseConfig()
	b.Tunables.CacheTTL = 42 * time.Minute
	b.Tunables.CacheGrace = 9 * time.Hour

	assert.Equal(t, domain.ScriptTupleOf(a).Hash(), domain.ScriptTupleOf(b).Hash(),
		"cache timing never changes the emitted text, so it must not change the key")
}

func TestScriptTuple_DiscriminatesOnEveryRelevantField(t *testing.T) {
	base := baseConfig()
	baseHash := domain.ScriptTupleOf(base).Hash()

	mutations := map[string]func(*domain.Config){
		"feature set":   func(c *domain.Config) { *c = c.WithFeatures([]domain.FeatureID{domain.FeatureGit}) },
		"theme":         func(c *domain.Config) { c.Theme = domain.ThemeLight },
		"colors":        func(c *domain.Config) { c.Colors = false },
		"emoji":         func(c *domain.Config) { c.Emoji = true },
		"debug":         func(c *domain.Config) { c.Debug = true },
		"usage toggle":  func(c *domain.Config) { c.Integrations.Usage = false },
		"usage command": func(c *domain.Config) { c.Integrations.UsageCommand = "other-tool" },
		"cpu threshold": func(c *domain.Config) { c.Thresholds.CPUPercent = 85 },
		"mem threshold": func(c *domain.Config) { c.Thresholds.MemoryPercent = 92 },
		"rate limit":    func(c *domain.Config) { c.Tunables.MinRenderInterval = 300 * time.Millisecond },
	}

	for name, mutate := range mutations {
		cfg := baseConfig()
		mutate(&cfg)
		assert.NotEqual(t, baseHash, domain.ScriptTupleOf(cfg).Hash(),
			"changing %s must change the script cache key", name)
	}
}

func TestScriptTuple_UnknownFeaturesInvisible(t *testing.T) {
	a := baseConfig()
	b := baseConfig()
	b.Features = append([]domain.FeatureID{"flux-capacitor"}, b.Features...)

	assert.Equal(t, domain.ScriptTupleOf(a).Hash(), domain.ScriptTupleOf(b).Hash(),
		"unknown identifiers are skipped by encoders and must be skipped by the key too")
}

func TestUsageTuple_DefaultCommand(t *testing.T) {
	cfg := baseConfig()
	require.Equal(t, domain.DefaultUsageCommand, domain.UsageTupleOf(cfg).Command)

	cfg.Integrations.UsageCommand = "usage-exporter"
	assert.NotEqual(t, domain.UsageTupleOf(baseConfig()).Hash(), domain.UsageTupleOf(cfg).Hash())
}

func TestUsageTuple_IndependentOfScriptFields(t *testing.T) {
	a := baseConfig()
	b := baseConfig()
	b.Theme = domain.ThemeLight
	b.Emoji = true

	assert.Equal(t, domain.UsageTupleOf(a).Hash(), domain.UsageTupleOf(b).Hash())
}
