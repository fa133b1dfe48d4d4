package encoder

import "github.com/statline/statline/internal/core/domain"

// usageQuery reads the usage cache entry maintained out-of-band by the
// refresher. The file holds shell-sourceable assignments; a missing or empty
// entry renders nothing; absence of cache data is a normal state.
var usageQuery = mustParse("usage_query", `# third-party usage data
usage_burn_rate=""
usage_projection=""
usage_cache_file="${STATLINE_CACHE_DIR}/{{.CacheFileName}}"
cached_result=""
if [ -f "$usage_cache_file" ]; then
  cached_result=$(cat "$usage_cache_file" 2>/dev/null)
fi
[ -z "$cached_result" ] && cached_result=""
if [ -n "$cached_result" ]; then
  eval "$cached_result"
fi
`)

var usageDisplay = mustParse("usage_display", `# third-party usage segment
if [ -n "$usage_burn_rate" ]; then
  line="${line}${C_USAGE}{{.Emoji}}${usage_burn_rate}${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
if [ -n "$usage_projection" ]; then
  line="${line}${C_USAGE}{{.Emoji}}~${usage_projection}${C_RESET}${segment_separator}"
  has_rendered_content=1
fi
`)

type usageQueryData struct {
	CacheFileName string
}

type usageDisplayData struct {
	Emoji string
}

func encodeUsage(cfg domain.Config) (domain.Fragment, error) {
	// The usage feature renders nothing without its integration.
	if !cfg.Integrations.Usage {
		return domain.Fragment{}, nil
	}

	query, err := render(usageQuery, usageQueryData{
		CacheFileName: domain.CacheFileName(domain.CacheDomainUsage, domain.UsageTupleOf(cfg).Hash()),
	})
	if err != nil {
		return domain.Fragment{}, err
	}

	display, err := render(usageDisplay, usageDisplayData{Emoji: glyph(cfg, "\U0001F525")})
	if err != nil {
		return domain.Fragment{}, err
	}

	return domain.Fragment{
		Query:   query,
		Display: display,
	}, nil
}
