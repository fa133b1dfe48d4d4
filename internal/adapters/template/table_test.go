package template_test

import (
	"path/filepath"
	"testing"

	"github.com/statline/statline/internal/adapters/cache"
	"github.com/statline/statline/internal/adapters/template"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports/mocks"
	"github.com/statline/statline/internal/engine/assemble"
	"github.com/statline/statline/internal/engine/encoder"
	"github.com/statline/statline/internal/engine/optimize"
	"github.com/statline/statline/internal/engine/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTable(t *testing.T) *template.Table {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	store := cache.NewFileStore(filepath.Join(t.TempDir(), "statline"))
	return template.New(cache.NewManager(store, logger))
}

// compile runs the full pipeline for a configuration the way the generate
// path does.
func compile(t *testing.T, cfg domain.Config) string {
	t.Helper()

	var frags []domain.Fragment
	for _, id := range domain.RenderOrder {
		if !cfg.Enabled(id) {
			continue
		}
		frag, ok, err := encoder.Encode(id, cfg)
		require.NoError(t, err)
		require.True(t, ok)
		frags = append(frags, frag)
	}

	raw, err := assemble.New().Assemble(cfg, frags)
	require.NoError(t, err)

	optimized := optimize.New().Optimize(raw)
	report := validate.New().Check(raw, optimized)
	require.True(t, report.Valid(), "well-known configuration failed validation: %+v", report.Findings)
	return optimized
}

func TestTable_WellKnownConfigsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, cfg := range template.WellKnown() {
		key := cache.ScriptKey(cfg)
		assert.False(t, seen[key], "duplicate table entry for %+v", cfg)
		seen[key] = true
	}
	assert.Len(t, seen, 3)
}

func TestTable_LookupMissesUnknownConfig(t *testing.T) {
	table := newTestTable(t)

	cfg := domain.NewConfig([]domain.FeatureID{domain.FeatureSystem}, domain.ThemeMono)
	assert.False(t, table.Contains(cfg))

	_, ok := table.Lookup(cfg)
	assert.False(t, ok)
}

func TestTable_LookupMissesUnprimedEntry(t *testing.T) {
	table := newTestTable(t)

	cfg := template.WellKnown()[0]
	require.True(t, table.Contains(cfg))

	_, ok := table.Lookup(cfg)
	assert.False(t, ok)
}

func TestTable_PrimeThenLookupRoundtrips(t *testing.T) {
	table := newTestTable(t)

	cfg := template.WellKnown()[0]
	text := compile(t, cfg)

	table.Prime(cfg, text)

	got, ok := table.Lookup(cfg)
	require.True(t, ok)
	assert.Equal(t, text, got)
}

func TestTable_PrimeIgnoresUnknownConfig(t *testing.T) {
	table := newTestTable(t)

	cfg := domain.NewConfig([]domain.FeatureID{domain.FeatureSystem}, domain.ThemeMono)
	table.Prime(cfg, "#!/bin/bash\n")

	_, ok := table.Lookup(cfg)
	assert.False(t, ok)
}

// TestTable_PipelineEquivalence is the property the verify command enforces
// in production: recompiling any table entry must reproduce the primed text
// byte for byte.
func TestTable_PipelineEquivalence(t *testing.T) {
	table := newTestTable(t)

	for _, cfg := range template.WellKnown() {
		table.Prime(cfg, compile(t, cfg))
	}

	for _, cfg := range template.WellKnown() {
		primed, ok := table.Lookup(cfg)
		require.True(t, ok)
		assert.Equal(t, compile(t, cfg), primed, "theme %s features %v", cfg.Theme, cfg.Features)
	}
}
