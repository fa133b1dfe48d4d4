// Package assemble concatenates feature fragments into a complete script.
//
// Concatenation order is a pure function of the enabled feature set, never
// of the order fragments arrive in, so two equal sets compile to
// byte-identical text.
package assemble

import (
	"strings"
	"text/template"

	"github.com/statline/statline/internal/build"
	"github.com/statline/statline/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assembler builds the raw script from fragments and scaffolding.
type Assembler struct{}

// New creates an Assembler.
func New() *Assembler {
	return &Assembler{}
}

var headerTmpl = template.Must(template.New("header").Parse(`#!/bin/bash
# statline {{.Version}} status line (generated; do not edit)
# profile {{.Profile}}

input=$(cat)

STATLINE_CACHE_DIR="${XDG_CACHE_HOME:-$HOME/.cache}/statline"
mkdir -p "$STATLINE_CACHE_DIR" 2>/dev/null
`))

const debugScaffold = `# diagnostics
if [ -n "${STATLINE_DEBUG:-}" ]; then
  printf 'statline: render start\n' >&2
  set -x
fi
`

// rateLimiterTmpl is the runtime contract of the emitted script: exit early
// and silently when invoked faster than the minimum interval, then rewrite
// the stamp.
var rateLimiterTmpl = template.Must(template.New("rate_limiter").Parse(`# rate limiter
render_stamp_file="${STATLINE_CACHE_DIR}/last_render"
current_epoch=$(date +%s)
if [ -f "$render_stamp_file" ]; then
  previous_epoch=$(cat "$render_stamp_file" 2>/dev/null)
  case "$previous_epoch" in
    ''|*[!0-9]*) previous_epoch=0 ;;
  esac
  if [ $(( current_epoch - previous_epoch )) -lt {{.IntervalSec}} ]; then
    exit 0
  fi
fi
printf '%s' "$current_epoch" > "$render_stamp_file"
`))

const contentTracking = `# content tracking
has_rendered_content=0
line=""
segment_separator=" | "
`

const epilogue = `# epilogue
if [ "$has_rendered_content" -eq 1 ]; then
  printf '%s\n' "${line%"$segment_separator"}"
fi
`

type headerData struct {
	Version string
	Profile string
}

type rateLimiterData struct {
	IntervalSec int
}

// Assemble produces the raw script text for the given configuration and
// fragments. Fragments may arrive in any order; only membership matters.
func (a *Assembler) Assemble(cfg domain.Config, frags []domain.Fragment) (string, error) {
	byFeature := make(map[domain.FeatureID]domain.Fragment, len(frags))
	for _, f := range frags {
		byFeature[f.Feature] = f
	}

	var sections []string

	header, err := renderSection(headerTmpl, headerData{
		Version: build.Version,
		Profile: domain.ScriptTupleOf(cfg).Hash(),
	})
	if err != nil {
		return "", err
	}
	sections = append(sections, header)

	if cfg.Debug {
		sections = append(sections, debugScaffold)
	}

	if sec := cfg.Tunables.MinRenderInterval; sec > 0 {
		interval := int(sec.Seconds())
		if interval < 1 {
			// The stamp has whole-second resolution.
			interval = 1
		}
		limiter, err := renderSection(rateLimiterTmpl, rateLimiterData{IntervalSec: interval})
		if err != nil {
			return "", err
		}
		sections = append(sections, limiter)
	}

	sections = append(sections, contentTracking, colorBootstrap(cfg))

	// Setup before queries before displays, each in canonical feature order,
	// so every utility precedes its callers.
	for _, pick := range []func(domain.Fragment) string{
		func(f domain.Fragment) string { return f.Setup },
		func(f domain.Fragment) string { return f.Query },
		func(f domain.Fragment) string { return f.Display },
	} {
		for _, id := range domain.RenderOrder {
			frag, ok := byFeature[id]
			if !ok {
				continue
			}
			if code := pick(frag); code != "" {
				sections = append(sections, code)
			}
		}
	}

	sections = append(sections, epilogue)

	return strings.Join(sections, "\n"), nil
}

func renderSection(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, "scaffold rendering failed"), "section", t.Name())
	}
	return sb.String(), nil
}
