package assemble

import (
	"fmt"
	"strings"

	"github.com/statline/statline/internal/core/domain"
)

// colorVars lists every palette variable the fragments reference, in emission
// order. Each theme must bind all of them so display code never expands an
// unset name.
var colorVars = []string{
	"C_RESET",
	"C_DIR",
	"C_GIT",
	"C_MODEL",
	"C_COST",
	"C_SYS",
	"C_USAGE",
	"C_ALERT",
}

var palettes = map[domain.Theme]map[string]string{
	domain.ThemeDark: {
		"C_RESET": "0",
		"C_DIR":   "1;34",
		"C_GIT":   "1;32",
		"C_MODEL": "1;35",
		"C_COST":  "1;33",
		"C_SYS":   "1;36",
		"C_USAGE": "1;31",
		"C_ALERT": "1;91",
	},
	domain.ThemeLight: {
		"C_RESET": "0",
		"C_DIR":   "34",
		"C_GIT":   "32",
		"C_MODEL": "35",
		"C_COST":  "33",
		"C_SYS":   "36",
		"C_USAGE": "31",
		"C_ALERT": "91",
	},
}

// colorBootstrap emits the palette assignments. Mono themes and disabled
// colors bind every variable to the empty string so the display code is
// identical in shape either way.
func colorBootstrap(cfg domain.Config) string {
	var sb strings.Builder
	sb.WriteString("# colors\n")

	palette, colored := palettes[cfg.Theme]
	if !cfg.Colors || !colored {
		for _, name := range colorVars {
			fmt.Fprintf(&sb, "%s=\"\"\n", name)
		}
		return sb.String()
	}

	for _, name := range colorVars {
		fmt.Fprintf(&sb, "%s=$'\\033[%sm'\n", name, palette[name])
	}
	return sb.String()
}
