package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/testvibe/testvibe/internal/domain"
	"github.com/testvibe/testvibe/pkg/registry"
)

// Filter filters run-list entries by identifier pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether the entry of a run-list of group matches pattern.
// Patterns are doublestar globs over "group/suite" (e.g. "smoke/*" or
// "**/login*"); a pattern without a slash is matched against the suite name
// alone, a pattern without wildcards as a substring.
func (f *Filter) Match(group, identifier, pattern string) bool {
	if pattern == "" {
		return true
	}
	g, name := registry.SplitIdentifier(group, identifier)

	subject := name
	if strings.Contains(pattern, "/") {
		subject = g + "/" + name
	}

	if !strings.ContainsAny(pattern, "*?[{") {
		return strings.Contains(subject, pattern)
	}
	matched, err := doublestar.Match(pattern, subject)
	return err == nil && matched
}

// FilterRunLists drops every run-list entry not matching pattern. Run-lists
// left without entries are dropped as well.
func (f *Filter) FilterRunLists(runlists []domain.RunList, pattern string) []domain.RunList {
	if pattern == "" {
		return runlists
	}

	var filtered []domain.RunList
	for _, rl := range runlists {
		var suites []string
		for _, id := range rl.Suites {
			if f.Match(rl.Group, id, pattern) {
				suites = append(suites, id)
			}
		}
		if len(suites) == 0 {
			continue
		}
		rl.Suites = suites
		filtered = append(filtered, rl)
	}
	return filtered
}
