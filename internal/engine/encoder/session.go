package encoder

import "github.com/statline/statline/internal/core/domain"

const sessionSetup = `format_cost_usd() {
  printf '$%.2f' "${1:-0}" 2>/dev/null
}

format_duration_ms() {
  local total_min=$(( ${1:-0} / 60000 ))
  if [ "$total_min" -ge 60 ]; then
    printf '%dh%02dm' $(( total_min / 60 )) $(( total_min % 60 ))
  else
    printf '%dm' "$total_min"
  fi
}
`

// sessionQuery assigns shell variables from one jq query via dynamic
// evaluation. The assignments are named gaps, not string concatenation.
var sessionQuery = mustParse("session_query", `# session telemetry
session_cost_usd=0
session_duration_ms=0
if [ -n "$(command -v jq)" ]; then
  eval "$(printf '%s' "$input" | jq -r '{{range $i, $a := .Assignments}}{{if $i}} + ";" + {{end}}"{{$a.Var}}=" + (({{$a.Expr}}) | tostring){{end}}' 2>/dev/null)"
fi
`)

var sessionDisplay = mustParse("session_display", `# session telemetry segment
if [ "$session_cost_usd" != "0" ] && [ -n "$session_cost_usd" ]; then
  line="${line}${C_COST}{{.Emoji}}$(format_cost_usd "$session_cost_usd") $(format_duration_ms "$session_duration_ms")${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type sessionQueryData struct {
	Assignments []evalAssignment
}

type sessionDisplayData struct {
	Emoji string
}

func encodeSession(cfg domain.Config) (domain.Fragment, error) {
	query, err := render(sessionQuery, sessionQueryData{Assignments: []evalAssignment{
		{Var: "session_cost_usd", Expr: ".cost.total_cost_usd // 0"},
		{Var: "session_duration_ms", Expr: ".cost.total_duration_ms // 0"},
	}})
	if err != nil {
		return domain.Fragment{}, err
	}

	display, err := render(sessionDisplay, sessionDisplayData{Emoji: glyph(cfg, "\U0001F4B0")})
	if err != nil {
		return domain.Fragment{}, err
	}

	return domain.Fragment{
		Setup:   sessionSetup,
		Query:   query,
		Display: display,
	}, nil
}
