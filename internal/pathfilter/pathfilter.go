// Package pathfilter decides which directory entries the organizer leaves alone.
package pathfilter

import (
	"regexp"
	"strings"
)

// PathFilter matches entry names against glob-style ignore patterns.
type PathFilter struct {
	ignoredPatterns []string
	compiled        []*regexp.Regexp
}

// New creates a PathFilter from the given patterns. Blank patterns are dropped.
// With no patterns nothing is ignored.
func New(patterns []string) *PathFilter {
	pf := &PathFilter{}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		re, err := compileGlob(pattern)
		if err != nil {
			continue
		}
		pf.ignoredPatterns = append(pf.ignoredPatterns, pattern)
		pf.compiled = append(pf.compiled, re)
	}
	return pf
}

// compileGlob converts a glob pattern to an anchored regex.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return regexp.Compile("^" + regexPattern + "$")
}

// IsIgnored reports whether an entry name matches any ignore pattern.
func (pf *PathFilter) IsIgnored(name string) bool {
	if pf == nil {
		return false
	}
	normalized := strings.ReplaceAll(name, "\\", "/")
	for _, re := range pf.compiled {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// Patterns returns the active ignore patterns.
func (pf *PathFilter) Patterns() []string {
	if pf == nil {
		return nil
	}
	out := make([]string, len(pf.ignoredPatterns))
	copy(out, pf.ignoredPatterns)
	return out
}

// Empty reports whether the filter ignores nothing.
func (pf *PathFilter) Empty() bool {
	return pf == nil || len(pf.compiled) == 0
}
