package searcher

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// compilePatterns splits a file filter expression on ";" and compiles
// each part. A malformed pattern disables file filtering for the whole
// run rather than aborting it: the caller gets nil patterns, which
// downstream stages treat as passthrough.
func compilePatterns(expr string, log zerolog.Logger) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, raw := range strings.Split(expr, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		re, err := regexp.Compile(raw)
		if err != nil {
			log.Warn().Err(err).Str("pattern", raw).Msg("invalid file filter pattern, file filtering disabled")
			return nil
		}
		patterns = append(patterns, re)
	}
	return patterns
}

// matchesAllPatterns reports whether every pattern matches at least one
// of the given file paths. The matching file may differ per pattern.
// No patterns means everything matches; no files means nothing does.
func matchesAllPatterns(files []string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		matched := false
		for _, f := range files {
			if re.MatchString(f) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// matchesAnyPattern reports whether the file path matches at least one
// pattern. With no patterns configured every file qualifies.
func matchesAnyPattern(file string, patterns []*regexp.Regexp) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, re := range patterns {
		if re.MatchString(file) {
			return true
		}
	}
	return false
}

// filterByFiles keeps the items whose changed files satisfy every
// pattern.
func filterByFiles(items []Item, patterns []*regexp.Regexp) []Item {
	if len(patterns) == 0 {
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if len(item.Files) == 0 {
			continue
		}
		if matchesAllPatterns(item.Files, patterns) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
