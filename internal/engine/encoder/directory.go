package encoder

import "github.com/statline/statline/internal/core/domain"

const directoryQuery = `# workspace directory
current_directory_path=""
if [ -n "$(command -v jq)" ]; then
  current_directory_path=$(printf '%s' "$input" | jq -r '.workspace.current_dir // empty' 2>/dev/null)
fi
[ -z "$current_directory_path" ] && current_directory_path=$(basename "$PWD")
current_directory_path="${current_directory_path/#$HOME/\~}"
`

var directoryDisplay = mustParse("directory_display", `# workspace directory segment
if [ -n "$current_directory_path" ]; then
  line="${line}${C_DIR}{{.Emoji}}${current_directory_path}${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type directoryData struct {
	Emoji string
}

func encodeDirectory(cfg domain.Config) (domain.Fragment, error) {
	display, err := render(directoryDisplay, directoryData{Emoji: glyph(cfg, "\U0001F4C1")})
	if err != nil {
		return domain.Fragment{}, err
	}
	return domain.Fragment{
		Query:   directoryQuery,
		Display: display,
	}, nil
}
