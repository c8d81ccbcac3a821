// Package browser implements the navigable file-browsing core: exclusion
// matching, file-type classification, listing projection, per-window
// sessions, and the background recursive scan.
package browser

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a file or folder name is excluded from listings.
// It compiles a list of glob patterns (`*`, `?`, literal text) into one
// anchored matcher: a name is excluded when any pattern matches it in full.
type Matcher struct {
	patterns []string
	matchAll bool
}

// NewMatcher compiles the given exclusion patterns.
//
// When any pattern fails to compile, the returned matcher matches every
// name, excluding everything, and the error names the offending pattern
// list. This mirrors the upstream fallback, which compiles to ".*" on
// failure; almost certainly a latent defect there, but preserved here so
// behavior stays identical. See DESIGN.md.
func NewMatcher(patterns []string) (*Matcher, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return &Matcher{matchAll: true},
				fmt.Errorf("invalid patterns: %v", patterns)
		}
	}

	return &Matcher{patterns: patterns}, nil
}

// Matches reports whether the name is excluded.
func (m *Matcher) Matches(name string) bool {
	if m.matchAll {
		return true
	}

	for _, pattern := range m.patterns {
		// Patterns are pre-validated, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
