// Package optimize rewrites generated script text for size and startup cost
// without changing behavior.
//
// Optimization is strictly best-effort: any internal failure returns the
// input unchanged, and the validator gets the final vote on whether the
// rewritten text ships.
package optimize

// Optimizer applies the fixed-order rewriting passes.
type Optimizer struct{}

// New creates an Optimizer.
func New() *Optimizer {
	return &Optimizer{}
}

// Optimize rewrites text through the fixed pass order: identifier
// compaction, idiom substitution, whitespace normalization. It never fails;
// a panic in any pass yields the original text.
func (o *Optimizer) Optimize(raw string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = raw
		}
	}()

	text := compactIdentifiers(raw)
	text = substituteIdioms(text)
	return normalizeWhitespace(text)
}

func compactIdentifiers(text string) string {
	for _, r := range aliasRules {
		text = r.pattern.ReplaceAllString(text, r.alias)
	}
	return text
}

func substituteIdioms(text string) string {
	for _, r := range idiomRules {
		text = r.apply(text)
	}
	return text
}

// normalizeWhitespace collapses runs of three or more blank lines to two.
// Content and comment lines are never touched.
func normalizeWhitespace(text string) string {
	return blankRuns.ReplaceAllString(text, "\n\n\n")
}
