// Package config provides the configuration loader for statline.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "statline.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// defaultConfig is what a host gets without any configuration file: the
// standard dark status line.
func defaultConfig() domain.Config {
	return domain.NewConfig([]domain.FeatureID{
		domain.FeatureDirectory,
		domain.FeatureGit,
		domain.FeatureModel,
		domain.FeatureSession,
	}, domain.ThemeDark)
}

// Load reads a configuration file from the given path. A missing file is not
// an error: the defaults apply.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug(fmt.Sprintf("no config file at %s, using defaults", path))
			return defaultConfig(), nil
		}
		return domain.Config{}, zerr.Wrap(err, "failed to read config file")
	}

	var statfile Statfile
	if err := yaml.Unmarshal(data, &statfile); err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to parse config file")
	}

	return l.fromStatfile(statfile)
}

func (l *Loader) fromStatfile(statfile Statfile) (domain.Config, error) {
	theme := domain.ThemeDark
	if statfile.Theme != "" {
		theme = domain.Theme(statfile.Theme)
		if !domain.KnownTheme(theme) {
			// Wrap before attaching metadata so the sentinel stays on the
			// chain for errors.Is.
			return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrUnknownTheme, "invalid theme"), "theme", statfile.Theme)
		}
	}

	features := defaultConfig().Features
	if statfile.Features != nil {
		if len(statfile.Features) == 0 {
			return domain.Config{}, domain.ErrNoFeatures
		}
		features = make([]domain.FeatureID, 0, len(statfile.Features))
		for _, name := range statfile.Features {
			id := domain.FeatureID(name)
			if !domain.KnownFeature(id) {
				l.logger.Warn(fmt.Sprintf("unknown feature %q in config, ignoring", name))
			}
			features = append(features, id)
		}
	}

	cfg := domain.NewConfig(features, theme)

	if statfile.Colors != nil {
		cfg.Colors = *statfile.Colors
	}
	cfg.Emoji = statfile.Emoji
	cfg.Debug = statfile.Debug

	cfg.Integrations = domain.Integrations{
		Usage:        statfile.Usage.Enabled,
		UsageCommand: statfile.Usage.Command,
	}

	cfg.Thresholds = domain.Thresholds{
		CPUPercent:    statfile.Alerts.CPUPercent,
		MemoryPercent: statfile.Alerts.MemoryPercent,
	}

	var err error
	if cfg.Tunables.CacheTTL, err = parseDuration(statfile.Cache.TTL, cfg.Tunables.CacheTTL); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "invalid cache ttl"), "value", statfile.Cache.TTL)
	}
	if cfg.Tunables.CacheGrace, err = parseDuration(statfile.Cache.Grace, cfg.Tunables.CacheGrace); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "invalid cache grace"), "value", statfile.Cache.Grace)
	}
	if cfg.Tunables.MinRenderInterval, err = parseDuration(statfile.Render.MinInterval, cfg.Tunables.MinRenderInterval); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "invalid render min interval"), "value", statfile.Render.MinInterval)
	}

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}
