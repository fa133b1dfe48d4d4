package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/statline/statline/internal/adapters/cache"
	"github.com/statline/statline/internal/adapters/telemetry"
	"github.com/statline/statline/internal/adapters/template"
	"github.com/statline/statline/internal/app"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"github.com/statline/statline/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app     *app.App
	manager *cache.Manager
	table   *template.Table
}

func newFixture(t *testing.T, refreshers ports.RefresherFactory) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := cache.NewFileStore(filepath.Join(t.TempDir(), "statline"))
	manager := cache.NewManager(store, logger)
	table := template.New(manager)

	if refreshers == nil {
		refreshers = func(string) ports.Refresher {
			return ports.RefreshFunc(func(context.Context, domain.CacheDomain, string) (string, error) {
				return "", errors.New("no refresher in this test")
			})
		}
	}

	return &fixture{
		app:     app.New(logger, telemetry.NewNoop(), manager, table, refreshers),
		manager: manager,
		table:   table,
	}
}

func testConfig() domain.Config {
	return domain.NewConfig([]domain.FeatureID{
		domain.FeatureDirectory,
		domain.FeatureGit,
		domain.FeatureModel,
	}, domain.ThemeDark)
}

func TestGenerate_ProducesScript(t *testing.T) {
	f := newFixture(t, nil)

	script, err := f.app.Generate(context.Background(), testConfig(), app.GenerateOptions{})
	require.NoError(t, err)

	text := script.Text()
	assert.True(t, strings.HasPrefix(text, "#!/bin/bash\n"))
	assert.Contains(t, text, "input=$(cat)")
	assert.False(t, script.FromCache)
	assert.Equal(t, len(text), script.Size)
	assert.Positive(t, script.Duration)
}

func TestGenerate_SecondRunHitsCache(t *testing.T) {
	f := newFixture(t, nil)
	cfg := testConfig()

	first, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)
	require.False(t, first.FromCache)

	second, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Text(), second.Text())
}

func TestGenerate_NoCacheForcesRecompile(t *testing.T) {
	f := newFixture(t, nil)
	cfg := testConfig()

	first, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)

	second, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{NoCache: true})
	require.NoError(t, err)
	assert.False(t, second.FromCache)

	// Determinism: the recompile reproduces the cached text exactly.
	assert.Equal(t, first.Text(), second.Text())
}

func TestGenerate_TemplateHitMarksVertexCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := cache.NewFileStore(filepath.Join(t.TempDir(), "statline"))
	manager := cache.NewManager(store, logger)
	table := template.New(manager)

	cfg := template.WellKnown()[0]
	table.Prime(cfg, "#!/bin/bash\nprecompiled\n")

	telem := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telem.EXPECT().Record(gomock.Any(), "compile status line").Return(context.Background(), vertex)
	vertex.EXPECT().Cached()
	vertex.EXPECT().Complete(nil)

	refreshers := ports.RefresherFactory(func(string) ports.Refresher { return nil })
	a := app.New(logger, telem, manager, table, refreshers)

	script, err := a.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, script.FromCache)
	assert.Equal(t, "#!/bin/bash\nprecompiled\n", script.Text())
}

func TestGenerate_PrimesUsageCache(t *testing.T) {
	var gotCommand string
	refreshers := ports.RefresherFactory(func(command string) ports.Refresher {
		gotCommand = command
		return ports.RefreshFunc(func(context.Context, domain.CacheDomain, string) (string, error) {
			return "usage_burn_rate='$1.00/h'\nusage_projection='$4.00'\n", nil
		})
	})
	f := newFixture(t, refreshers)

	cfg := domain.NewConfig([]domain.FeatureID{domain.FeatureDirectory, domain.FeatureUsage}, domain.ThemeDark)
	cfg.Integrations.Usage = true
	cfg.Integrations.UsageCommand = "ccusage --offline"

	_, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "ccusage --offline", gotCommand)
	value, ok := f.manager.Get(domain.CacheDomainUsage, cache.UsageKey(cfg), cfg.Tunables.CacheTTL)
	require.True(t, ok)
	assert.Contains(t, value, "usage_burn_rate=")
}

func TestGenerate_UsageRefreshFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, nil) // default test refresher always fails

	cfg := domain.NewConfig([]domain.FeatureID{domain.FeatureDirectory, domain.FeatureUsage}, domain.ThemeDark)
	cfg.Integrations.Usage = true

	script, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, script.Text())
}

func TestVerify_PassesAfterGenerate(t *testing.T) {
	f := newFixture(t, nil)

	// Prime every table entry through the real pipeline.
	require.NoError(t, f.app.Verify(context.Background()))

	// Every entry is now primed; a second pass must still agree.
	require.NoError(t, f.app.Verify(context.Background()))
}

func TestVerify_DetectsCorruptedEntry(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Verify(context.Background()))

	// Corrupt one primed entry behind the table's back.
	cfg := template.WellKnown()[0]
	f.manager.Put(domain.CacheDomainScript, cache.ScriptKey(cfg), "#!/bin/bash\ntampered\n")

	err := f.app.Verify(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTemplateMismatch)
}

func TestClean_PurgesCache(t *testing.T) {
	f := newFixture(t, nil)
	cfg := testConfig()

	_, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)

	require.NoError(t, f.app.Clean(context.Background()))

	// The memory tier is gone too; only a full recompile can answer now.
	script, err := f.app.Generate(context.Background(), cfg, app.GenerateOptions{})
	require.NoError(t, err)
	assert.False(t, script.FromCache)
}
