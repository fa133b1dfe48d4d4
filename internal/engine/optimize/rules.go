package optimize

import (
	"regexp"
	"sort"
	"strings"
)

// aliasTable maps generated long identifiers to their compact aliases. The
// mapping is bijective and covers every reference form: bare, braced and
// inside emitted jq programs, since compaction matches whole tokens.
//
// cached_result is deliberately absent: it is a scratch variable local to one
// snippet and keeping its name makes optimized cache-read code greppable.
// usage_burn_rate and usage_projection are absent because they are assigned
// by sourcing refresher-written cache files; renaming them would break the
// file contract.
var aliasTable = map[string]string{
	"current_directory_path": "d0",
	"current_epoch":          "t0",
	"git_branch_name":        "g0",
	"git_dirty_marker":       "g1",
	"has_rendered_content":   "f0",
	"model_display_name":     "m0",
	"previous_epoch":         "t1",
	"render_stamp_file":      "t2",
	"segment_separator":      "p0",
	"session_cost_usd":       "s0",
	"session_duration_ms":    "s1",
	"system_color":           "y2",
	"system_cpu_percent":     "y0",
	"system_memory_percent":  "y1",
	"usage_cache_file":       "u2",
}

// AliasTable returns a copy of the identifier compaction table.
func AliasTable() map[string]string {
	out := make(map[string]string, len(aliasTable))
	for k, v := range aliasTable {
		out[k] = v
	}
	return out
}

type aliasRule struct {
	pattern *regexp.Regexp
	alias   string
}

// aliasRules is built once, ordered by long name for deterministic
// application. Whole-token matching prevents prefix collisions.
var aliasRules = func() []aliasRule {
	names := make([]string, 0, len(aliasTable))
	for name := range aliasTable {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]aliasRule, 0, len(names))
	for _, name := range names {
		rules = append(rules, aliasRule{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
			alias:   aliasTable[name],
		})
	}
	return rules
}()

// idiomRule replaces a higher-overhead construct with a behaviorally
// equivalent lower-overhead one. Literal rules are exact-substring; pattern
// rules are structural. Every structural rule carries an explicit skip guard
// matching text already in (or too close to) the target form, so a rule can
// never re-transform its own output.
type idiomRule struct {
	name    string
	literal string
	target  string
	pattern *regexp.Regexp
	expand  func(match []string) string
	skip    *regexp.Regexp
}

var idiomRules = []idiomRule{
	{
		// [ -z "$x" ] -> [[ ! $x ]]; [[ -z "$x" ]] is left untouched.
		name:    "negate-empty-test",
		pattern: regexp.MustCompile(`\[\[? -z "\$([A-Za-z_][A-Za-z0-9_]*)" \]\]?`),
		skip:    regexp.MustCompile(`^\[\[`),
		expand: func(match []string) string {
			return "[[ ! $" + match[1] + " ]]"
		},
	},
	{
		// [ -n "$(command -v x)" ] -> command -v x >/dev/null 2>&1
		name:    "builtin-existence-check",
		pattern: regexp.MustCompile(`\[\[? -n "\$\(command -v ([A-Za-z0-9_.-]+)\)" \]\]?`),
		skip:    regexp.MustCompile(`^\[\[`),
		expand: func(match []string) string {
			return "command -v " + match[1] + " >/dev/null 2>&1"
		},
	},
	{
		// [ -n "$x" ] -> [[ -n $x ]]; the double-bracket form skips a quoting
		// round trip and is already the target form.
		name:    "double-bracket-nonempty",
		pattern: regexp.MustCompile(`\[\[? -n "\$([A-Za-z_][A-Za-z0-9_]*)" \]\]?`),
		skip:    regexp.MustCompile(`^\[\[`),
		expand: func(match []string) string {
			return "[[ -n $" + match[1] + " ]]"
		},
	},
	{
		// subshell + external basename -> parameter expansion
		name:    "basename-parameter-expansion",
		literal: `$(basename "$PWD")`,
		target:  `${PWD##*/}`,
	},
}

func (r idiomRule) apply(text string) string {
	if r.literal != "" {
		return strings.ReplaceAll(text, r.literal, r.target)
	}
	return r.pattern.ReplaceAllStringFunc(text, func(found string) string {
		if r.skip != nil && r.skip.MatchString(found) {
			return found
		}
		return r.expand(r.pattern.FindStringSubmatch(found))
	})
}

// blankRuns matches three or more consecutive blank lines.
var blankRuns = regexp.MustCompile(`\n{4,}`)
