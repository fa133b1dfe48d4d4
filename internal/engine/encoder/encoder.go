// Package encoder maps feature configurations to script fragments.
//
// Encoders are pure: identical inputs always yield byte-identical fragments,
// which the cache layer depends on. The emitted runtime code is defensive:
// every external tool call is guarded by an existence check and a bounded
// timeout so unavailability at script execution time degrades to empty
// output, never to an error.
package encoder

import (
	"strings"
	"text/template"

	"github.com/statline/statline/internal/core/domain"
	"go.trai.ch/zerr"
)

type encodeFunc func(cfg domain.Config) (domain.Fragment, error)

var encoders = map[domain.FeatureID]encodeFunc{
	domain.FeatureDirectory: encodeDirectory,
	domain.FeatureGit:       encodeGit,
	domain.FeatureModel:     encodeModel,
	domain.FeatureSession:   encodeSession,
	domain.FeatureSystem:    encodeSystem,
	domain.FeatureUsage:     encodeUsage,
}

// Encode returns the fragment for one feature. ok is false for identifiers
// this generator does not understand; callers skip those silently.
func Encode(id domain.FeatureID, cfg domain.Config) (domain.Fragment, bool, error) {
	enc, ok := encoders[id]
	if !ok {
		return domain.Fragment{}, false, nil
	}

	frag, err := enc(cfg)
	if err != nil {
		return domain.Fragment{}, true, zerr.With(zerr.Wrap(err, "feature encoding failed"), "feature", string(id))
	}

	frag.Feature = id
	return frag, true, nil
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, "template execution failed"), "template", t.Name())
	}
	return sb.String(), nil
}

// glyph returns the emoji prefix for a segment, empty when emoji are off.
func glyph(cfg domain.Config, emoji string) string {
	if !cfg.Emoji {
		return ""
	}
	return emoji + " "
}

// evalAssignment is one named gap in an emitted eval-assignment snippet: the
// shell variable to assign and the jq expression producing its value. The
// snippet itself is a typed template so composition stays auditable.
type evalAssignment struct {
	Var  string
	Expr string
}
