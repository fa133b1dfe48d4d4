// Package validate proves that optimization preserved script structure.
//
// The validator never inspects the optimizer: it only compares the original
// and rewritten texts. Any high-severity finding obliges the caller to
// discard the rewritten text and ship the original.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/statline/statline/internal/core/domain"
)

// Validator compares an original script against its optimized candidate.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

var bracketPairs = []struct {
	name        string
	open, close rune
}{
	{"square brackets", '[', ']'},
	{"curly braces", '{', '}'},
	{"parentheses", '(', ')'},
}

// blockingCalls matches constructs that can stall a render. The emitted
// script runs on every prompt, so a newly introduced one is disqualifying.
var blockingCalls = regexp.MustCompile(`\bsleep\b|\bwait\b|\bread -t\b|\bflock\b`)

// Check compares original and optimized text and reports findings. The
// report is valid when no finding is high severity.
func (v *Validator) Check(original, optimized string) domain.ValidationReport {
	var findings []domain.ValidationFinding

	findings = append(findings, checkQuotes(original, optimized)...)
	findings = append(findings, checkBrackets(original, optimized)...)
	findings = append(findings, checkNestedTests(original, optimized)...)
	findings = append(findings, checkBlockingCalls(original, optimized)...)

	return domain.ValidationReport{Findings: findings}
}

func checkQuotes(original, optimized string) []domain.ValidationFinding {
	var findings []domain.ValidationFinding

	for _, q := range []string{`"`, `'`} {
		origBalanced := strings.Count(original, q)%2 == 0
		optBalanced := strings.Count(optimized, q)%2 == 0
		if origBalanced != optBalanced {
			findings = append(findings, domain.ValidationFinding{
				Category: domain.FindingSyntax,
				Severity: domain.SeverityHigh,
				Message:  fmt.Sprintf("optimization changed %s-quote balance", q),
			})
		}
		if !optBalanced {
			findings = append(findings, domain.ValidationFinding{
				Category: domain.FindingSyntax,
				Severity: domain.SeverityHigh,
				Message:  fmt.Sprintf("optimized text has unbalanced %s quotes", q),
			})
		}
	}
	return findings
}

func checkBrackets(original, optimized string) []domain.ValidationFinding {
	var findings []domain.ValidationFinding

	for _, p := range bracketPairs {
		origNet := strings.Count(original, string(p.open)) - strings.Count(original, string(p.close))
		optNet := strings.Count(optimized, string(p.open)) - strings.Count(optimized, string(p.close))
		if origNet != optNet {
			findings = append(findings, domain.ValidationFinding{
				Category: domain.FindingSyntax,
				Severity: domain.SeverityHigh,
				Message:  fmt.Sprintf("optimization changed %s balance", p.name),
			})
		}
	}
	return findings
}

func checkNestedTests(original, optimized string) []domain.ValidationFinding {
	var findings []domain.ValidationFinding

	for _, marker := range []string{"[[[", "]]]"} {
		if strings.Contains(optimized, marker) && !strings.Contains(original, marker) {
			findings = append(findings, domain.ValidationFinding{
				Category: domain.FindingSyntax,
				Severity: domain.SeverityHigh,
				Message:  fmt.Sprintf("optimization produced malformed nested test %q", marker),
			})
		}
	}
	return findings
}

func checkBlockingCalls(original, optimized string) []domain.ValidationFinding {
	origCalls := len(blockingCalls.FindAllString(original, -1))
	optCalls := len(blockingCalls.FindAllString(optimized, -1))
	if optCalls > origCalls {
		return []domain.ValidationFinding{{
			Category: domain.FindingPerformance,
			Severity: domain.SeverityHigh,
			Message:  "optimization introduced a blocking call",
		}}
	}
	return nil
}
