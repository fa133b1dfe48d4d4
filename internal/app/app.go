// Package app implements the application layer for statline.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/statline/statline/internal/adapters/cache"
	"github.com/statline/statline/internal/adapters/template"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"github.com/statline/statline/internal/engine/assemble"
	"github.com/statline/statline/internal/engine/encoder"
	"github.com/statline/statline/internal/engine/optimize"
	"github.com/statline/statline/internal/engine/validate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	logger     ports.Logger
	telemetry  ports.Telemetry
	cache      *cache.Manager
	templates  *template.Table
	refreshers ports.RefresherFactory

	assembler *assemble.Assembler
	optimizer *optimize.Optimizer
	validator *validate.Validator
}

// New creates a new App instance.
func New(
	log ports.Logger,
	telemetry ports.Telemetry,
	manager *cache.Manager,
	templates *template.Table,
	refreshers ports.RefresherFactory,
) *App {
	return &App{
		logger:     log,
		telemetry:  telemetry,
		cache:      manager,
		templates:  templates,
		refreshers: refreshers,
		assembler:  assemble.New(),
		optimizer:  optimize.New(),
		validator:  validate.New(),
	}
}

// SetTelemetry replaces the telemetry recorder. Used by the CLI layer to
// switch on progress output.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// NoCache bypasses every cache tier and forces a full pipeline run. The
	// result is still stored for later invocations.
	NoCache bool
}

// Generate compiles the status-line script for a configuration.
func (a *App) Generate(ctx context.Context, cfg domain.Config, opts GenerateOptions) (domain.CompiledScript, error) {
	start := time.Now()

	ctx, vtx := a.telemetry.Record(ctx, "compile status line")

	if !opts.NoCache {
		if text, ok := a.templates.Lookup(cfg); ok {
			vtx.Cached()
			vtx.Complete(nil)
			return domain.CompiledScript{
				Optimized: text,
				Size:      len(text),
				Duration:  time.Since(start),
				FromCache: true,
			}, nil
		}
		if text, ok := a.cache.Get(domain.CacheDomainScript, cache.ScriptKey(cfg), cfg.Tunables.CacheTTL); ok {
			vtx.Cached()
			vtx.Complete(nil)
			return domain.CompiledScript{
				Optimized: text,
				Size:      len(text),
				Duration:  time.Since(start),
				FromCache: true,
			}, nil
		}
	}

	script, err := a.compile(ctx, cfg)
	if err != nil {
		vtx.Complete(err)
		return domain.CompiledScript{}, err
	}

	a.cache.Put(domain.CacheDomainScript, cache.ScriptKey(cfg), script.Text())
	a.templates.Prime(cfg, script.Text())

	if cfg.Integrations.Usage {
		a.primeUsage(ctx, cfg)
	}

	script.Duration = time.Since(start)
	vtx.Complete(nil)
	return script, nil
}

// compile runs the full pipeline: encode, assemble, optimize, validate.
func (a *App) compile(ctx context.Context, cfg domain.Config) (domain.CompiledScript, error) {
	vtx := ports.VertexFromContext(ctx)

	var frags []domain.Fragment
	var encodeErrs error
	for _, id := range domain.RenderOrder {
		if !cfg.Enabled(id) {
			continue
		}
		frag, ok, err := encoder.Encode(id, cfg)
		if err != nil {
			encodeErrs = errors.Join(encodeErrs, zerr.With(err, "feature", string(id)))
			continue
		}
		if !ok {
			continue
		}
		frags = append(frags, frag)
	}
	if encodeErrs != nil {
		return domain.CompiledScript{}, zerr.Wrap(errors.Join(domain.ErrGenerationFailed, encodeErrs), "feature encoding failed")
	}

	raw, err := a.assembler.Assemble(cfg, frags)
	if err != nil {
		return domain.CompiledScript{}, zerr.Wrap(errors.Join(domain.ErrGenerationFailed, err), "assembly failed")
	}

	optimized := a.optimizer.Optimize(raw)

	script := domain.CompiledScript{Raw: raw, Optimized: optimized}
	if report := a.validator.Check(raw, optimized); !report.Valid() {
		// Ship the raw script; the user still gets a working status line.
		for _, finding := range report.Findings {
			msg := fmt.Sprintf("optimizer output rejected (%s/%s): %s",
				finding.Category, finding.Severity, finding.Message)
			a.logger.Warn(msg)
			if vtx != nil {
				vtx.Log(domain.LogLevelWarn, msg)
			}
		}
		script.Optimized = ""
	}

	script.Size = len(script.Text())
	return script, nil
}

// primeUsage refreshes the usage cache so the first script invocation finds
// data. Failures are logged, never surfaced: the script renders nothing for
// a missing usage file.
func (a *App) primeUsage(ctx context.Context, cfg domain.Config) {
	_, vtx := a.telemetry.Record(ctx, "refresh usage data")

	refresh := a.refreshers(cfg.Integrations.UsageCommand)
	_, err := a.cache.GetOrRefresh(ctx,
		domain.CacheDomainUsage,
		cache.UsageKey(cfg),
		cfg.Tunables.CacheTTL,
		cfg.Tunables.CacheGrace,
		refresh,
	)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("usage data unavailable: %v", err))
	}
	vtx.Complete(err)
}

// Verify recompiles every precompiled-table entry through the full pipeline
// and fails on any byte difference. Entries not yet primed are primed from
// the fresh compile.
func (a *App) Verify(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, cfg := range template.WellKnown() {
		g.Go(func() error {
			_, vtx := a.telemetry.Record(ctx, fmt.Sprintf("verify %s/%v", cfg.Theme, cfg.Features))

			script, err := a.compile(ctx, cfg)
			if err != nil {
				vtx.Complete(err)
				return err
			}

			primed, ok := a.templates.Lookup(cfg)
			if !ok {
				a.templates.Prime(cfg, script.Text())
				vtx.Complete(nil)
				return nil
			}

			if primed != script.Text() {
				err := zerr.With(
					zerr.With(zerr.Wrap(domain.ErrTemplateMismatch, "verification failed"), "theme", string(cfg.Theme)),
					"features", fmt.Sprintf("%v", cfg.Features),
				)
				vtx.Complete(err)
				return err
			}
			vtx.Complete(nil)
			return nil
		})
	}

	return g.Wait()
}

// Clean removes every cache entry of every domain.
func (a *App) Clean(_ context.Context) error {
	if err := a.cache.Purge(); err != nil {
		return zerr.Wrap(err, "failed to clean cache")
	}
	return nil
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
