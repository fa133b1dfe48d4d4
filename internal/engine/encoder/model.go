package encoder

import "github.com/statline/statline/internal/core/domain"

const modelQuery = `# active model
model_display_name=""
if [ -n "$(command -v jq)" ]; then
  model_display_name=$(printf '%s' "$input" | jq -r '.model.display_name // empty' 2>/dev/null)
fi
`

var modelDisplay = mustParse("model_display", `# active model segment
if [ -n "$model_display_name" ]; then
  line="${line}${C_MODEL}{{.Emoji}}${model_display_name}${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type modelData struct {
	Emoji string
}

func encodeModel(cfg domain.Config) (domain.Fragment, error) {
	display, err := render(modelDisplay, modelData{Emoji: glyph(cfg, "\U0001F916")})
	if err != nil {
		return domain.Fragment{}, err
	}
	return domain.Fragment{
		Query:   modelQuery,
		Display: display,
	}, nil
}
