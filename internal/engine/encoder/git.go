package encoder

import "github.com/statline/statline/internal/core/domain"

// Every git invocation is bounded: a repository on a slow filesystem must
// never stall the prompt.
const gitQuery = `# version control state
git_branch_name=""
git_dirty_marker=""
if [ -n "$(command -v git)" ]; then
  if timeout 2 git rev-parse --is-inside-work-tree >/dev/null 2>&1; then
    git_branch_name=$(timeout 2 git symbolic-ref --short HEAD 2>/dev/null || timeout 2 git rev-parse --short HEAD 2>/dev/null)
    if [ -n "$(timeout 2 git status --porcelain 2>/dev/null | head -c 1)" ]; then
      git_dirty_marker="*"
    fi
  fi
fi
`

var gitDisplay = mustParse("git_display", `# version control segment
if [ -n "$git_branch_name" ]; then
  line="${line}${C_GIT}{{.Emoji}}${git_branch_name}${git_dirty_marker}${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type gitData struct {
	Emoji string
}

func encodeGit(cfg domain.Config) (domain.Fragment, error) {
	display, err := render(gitDisplay, gitData{Emoji: glyph(cfg, "\U0001F33F")})
	if err != nil {
		return domain.Fragment{}, err
	}
	return domain.Fragment{
		Query:   gitQuery,
		Display: display,
	}, nil
}
