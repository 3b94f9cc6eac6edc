// Package selection picks the suites a command works on.
package selection

import (
	"path/filepath"
	"strings"

	"gospec/pkg/spec"
)

// Filter filters root groups by description pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the groups whose description matches pattern.
// Supports wildcards like "Array*" or "*Integer*"; a pattern without
// wildcards matches as a substring. Declaration order is preserved.
func (f *Filter) FilterByName(groups []*spec.Group, pattern string) []*spec.Group {
	if pattern == "" {
		return groups
	}

	var filtered []*spec.Group
	for _, g := range groups {
		if Matches(g.Description(), pattern) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Matches reports whether name matches pattern.
func Matches(name, pattern string) bool {
	if strings.Trim(pattern, "*") == "" {
		return true
	}

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Every non-empty part must appear in the name, in order
		rest := name
		found := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
			found = true
		}
		return found
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
