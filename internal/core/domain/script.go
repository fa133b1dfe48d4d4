package domain

import "time"

// CompiledScript is the result of one generation pipeline run.
type CompiledScript struct {
	// Raw is the assembled script before optimization. It is the
	// byte-deterministic artifact: the same discriminating tuple always
	// produces the same Raw text.
	Raw string

	// Optimized is the rewritten script, empty when optimization was skipped
	// or rejected by validation.
	Optimized string

	// Size is the byte length of the shipped text.
	Size int

	// Duration is how long generation took.
	Duration time.Duration

	// FromCache reports whether the script was served by a cache tier
	// instead of the full pipeline.
	FromCache bool
}

// Text returns the script text to ship: the optimized form when it survived
// validation, the raw form otherwise.
func (s CompiledScript) Text() string {
	if s.Optimized != "" {
		return s.Optimized
	}
	return s.Raw
}
