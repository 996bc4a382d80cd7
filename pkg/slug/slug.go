// Package slug generates URL-safe identifiers and resolves name/slug
// collisions within a tenant.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	validPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	invalidChars  = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Make converts free text to a URL-safe slug: lowercase, special characters
// stripped, runs of whitespace/underscores/hyphens collapsed to a single
// hyphen, leading and trailing hyphens removed. Deterministic and total; an
// input with no usable characters yields "".
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// IsValid reports whether s is a well-formed slug: lowercase alphanumeric
// segments joined by single hyphens, 1-100 characters.
func IsValid(s string) bool {
	return len(s) >= 1 && len(s) <= 100 && validPattern.MatchString(s)
}

// Unique returns base if it does not appear in existing, otherwise the first
// "base-N" (N >= 1) not present in existing.
func Unique(base string, existing []string) string {
	taken := toSet(existing)
	if !taken[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// UniqueName returns the first free name of the form "base (suffix)",
// "base (suffix 1)", "base (suffix 2)", ... given the set of existing names.
func UniqueName(base string, existing []string, suffix string) string {
	taken := toSet(existing)
	candidate := fmt.Sprintf("%s (%s)", base, suffix)
	if !taken[candidate] {
		return candidate
	}
	for n := 1; ; n++ {
		candidate = fmt.Sprintf("%s (%s %d)", base, suffix, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
