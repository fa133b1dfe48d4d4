package domain

import "go.trai.ch/zerr"

var (
	// ErrGenerationFailed is returned when the pipeline cannot produce a
	// complete script. Partial or corrupt text is never returned alongside it.
	ErrGenerationFailed = zerr.New("script generation failed")

	// ErrUnknownTheme is returned by the config loader for an unsupported theme.
	ErrUnknownTheme = zerr.New("unknown theme")

	// ErrNoFeatures is returned when the configuration enables no known feature.
	ErrNoFeatures = zerr.New("no features enabled")

	// ErrTemplateMismatch is returned by verification when a template-cache
	// entry diverges from the pipeline output for the same tuple.
	ErrTemplateMismatch = zerr.New("template output differs from pipeline output")

	// ErrRefreshFailed is returned when an external data refresh fails and no
	// stale fallback is available.
	ErrRefreshFailed = zerr.New("refresh failed")
)
