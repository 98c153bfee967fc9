package hbetl

import (
	"regexp"
	"sort"
	"strings"
)

// prefixMatcher is the HelperPrefixMatcher of spec.md §4.F: a longest-
// match alternation over every registered helper/block-helper name, so
// multi-word helpers (e.g. "else if") are recognized as a single name
// before the trailing option string is split off.
type prefixMatcher struct {
	re *regexp.Regexp
}

// newPrefixMatcher builds a matcher from the given names. Names are
// sorted by length descending (longest first) before being joined into
// a single alternation, a "greedy, longest first" ordering that mirrors
// how a hand-rolled operator lexer disambiguates overlapping token
// spellings. A nil matcher is returned when names is empty.
func newPrefixMatcher(names []string) *prefixMatcher {
	if len(names) == 0 {
		return nil
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, n := range sorted {
		quoted[i] = regexp.QuoteMeta(n)
	}

	pattern := "^(?P<tag_name>" + strings.Join(quoted, "|") + ")(?P<tag_options>.*)$"
	re := regexp.MustCompile("(?s)" + pattern)
	return &prefixMatcher{re: re}
}

// match returns the longest registered name that prefixes s, plus
// everything following it, if any name matches.
func (m *prefixMatcher) match(s string) (name string, rest string, ok bool) {
	if m == nil {
		return "", "", false
	}
	sub := m.re.FindStringSubmatch(s)
	if sub == nil {
		return "", "", false
	}
	idx := m.re.SubexpIndex("tag_name")
	restIdx := m.re.SubexpIndex("tag_options")
	return sub[idx], sub[restIdx], true
}
