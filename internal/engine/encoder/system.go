package encoder

import "github.com/statline/statline/internal/core/domain"

const systemQuery = `# system metrics
system_cpu_percent=""
system_memory_percent=""
if [ -n "$(command -v awk)" ] && [ -r /proc/loadavg ]; then
  system_cpu_percent=$(awk -v cores="$(nproc 2>/dev/null || printf 1)" '{ printf "%d", ($1 / cores) * 100 }' /proc/loadavg 2>/dev/null)
fi
if [ -n "$(command -v awk)" ] && [ -r /proc/meminfo ]; then
  system_memory_percent=$(awk '/MemTotal/ { t = $2 } /MemAvailable/ { a = $2 } END { if (t > 0) printf "%d", ((t - a) / t) * 100 }' /proc/meminfo 2>/dev/null)
fi
`

var systemDisplay = mustParse("system_display", `# system metrics segment
if [ -n "$system_cpu_percent" ] && [ -n "$system_memory_percent" ]; then
  system_color="${C_SYS}"
{{- if .CPUThreshold}}
  if [ "$system_cpu_percent" -ge {{.CPUThreshold}} ]; then
    system_color="${C_ALERT}"
  fi
{{- end}}
{{- if .MemThreshold}}
  if [ "$system_memory_percent" -ge {{.MemThreshold}} ]; then
    system_color="${C_ALERT}"
  fi
{{- end}}
  line="${line}${system_color}{{.Emoji}}${system_cpu_percent}%/${system_memory_percent}%${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type systemData struct {
	Emoji        string
	CPUThreshold int
	MemThreshold int
}

func encodeSystem(cfg domain.Config) (domain.Fragment, error) {
	display, err := render(systemDisplay, systemData{
		Emoji:        glyph(cfg, "\U0001F4CA"),
		CPUThreshold: cfg.Thresholds.CPUPercent,
		MemThreshold: cfg.Thresholds.MemoryPercent,
	})
	if err != nil {
		return domain.Fragment{}, err
	}
	return domain.Fragment{
		Query:   systemQuery,
		Display: display,
	}, nil
}
