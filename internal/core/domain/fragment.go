package domain

// Fragment is the unit of generated code for a single feature. Encoders
// produce fragments deterministically: identical inputs yield byte-identical
// fragments, which the cache layer depends on.
type Fragment struct {
	// Feature is the feature this fragment renders.
	Feature FeatureID

	// Setup contains helper functions and constants. Assembled before any
	// query code so utilities precede their callers.
	Setup string

	// Query contains the runtime lookups (stdin JSON parsing, guarded
	// external tool calls). Runs after all setup code.
	Query string

	// Display contains the rendering code. Runs last, after every query.
	Display string
}

// Empty reports whether the fragment contributes no code at all.
func (f Fragment) Empty() bool {
	return f.Setup == "" && f.Query == "" && f.Display == ""
}
