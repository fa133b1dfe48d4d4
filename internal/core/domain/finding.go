package domain

// FindingCategory classifies a validation finding.
type FindingCategory string

const (
	// FindingSyntax flags structural damage (unbalanced quotes or brackets).
	FindingSyntax FindingCategory = "syntax"
	// FindingBehavior flags a suspected semantic change.
	FindingBehavior FindingCategory = "behavior"
	// FindingPerformance flags a suspected performance regression.
	FindingPerformance FindingCategory = "performance"
)

// Severity ranks a validation finding.
type Severity int

const (
	// SeverityLow findings are informational.
	SeverityLow Severity = iota
	// SeverityMedium findings are suspicious but not disqualifying.
	SeverityMedium
	// SeverityHigh findings force the caller to discard the optimized text.
	SeverityHigh
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "low"
	}
}

// ValidationFinding is one observation made while comparing the original and
// optimized script texts.
type ValidationFinding struct {
	Category FindingCategory
	Severity Severity
	Message  string
}

// ValidationReport aggregates the findings of one validation run.
type ValidationReport struct {
	Findings []ValidationFinding
}

// Severity returns the maximum severity across all findings; SeverityLow
// when there are none.
func (r ValidationReport) Severity() Severity {
	max := SeverityLow
	for _, f := range r.Findings {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max
}

// Valid reports whether the optimized text may be shipped. Any high-severity
// finding disqualifies it.
func (r ValidationReport) Valid() bool {
	return r.Severity() < SeverityHigh
}
