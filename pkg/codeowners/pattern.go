package codeowners

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern is a compiled CODEOWNERS path pattern. Compilation normalizes the
// source pattern into one or more doublestar globs so that matching is a
// plain glob test per path:
//
//   - a leading "/" anchors the pattern at the repository root
//   - a trailing "/" makes it a directory pattern, matching everything
//     under that directory
//   - a pattern without "/" matches a file or directory of that name at
//     any depth ("*" within a segment, "**" across segments)
//   - an unanchored pattern containing "/" matches path suffixes aligned
//     on segment boundaries
//
// Matching is case-sensitive and full-string per segment.
type Pattern struct {
	source  string
	globs   []string
	literal bool
}

// CompilePattern normalizes a CODEOWNERS pattern. A pattern that does not
// survive glob validation degrades to a literal pattern which only matches
// by exact string equality; compilation never fails.
func CompilePattern(pattern string) Pattern {
	p := Pattern{source: pattern}

	anchored := strings.HasPrefix(pattern, "/")
	dirOnly := strings.HasSuffix(pattern, "/")
	core := strings.TrimSuffix(strings.TrimPrefix(pattern, "/"), "/")
	if core == "" {
		p.literal = true
		return p
	}

	switch {
	// "/**/*" rather than "/**" so that a directory pattern only matches
	// strict descendants, never a file that happens to share the name.
	case dirOnly && anchored:
		p.globs = []string{core + "/**/*"}
	case dirOnly:
		p.globs = []string{"**/" + core + "/**/*"}
	case anchored:
		p.globs = []string{core}
	case !strings.Contains(core, "/"):
		// A bare name matches both a file of that name at any depth and
		// the contents of any directory of that name.
		p.globs = []string{"**/" + core, "**/" + core + "/**"}
	default:
		p.globs = []string{"**/" + core}
	}

	for _, glob := range p.globs {
		if !doublestar.ValidatePattern(glob) {
			p.globs = nil
			p.literal = true
			break
		}
	}
	return p
}

// Matches reports whether the pattern matches a repository-relative path.
// It never fails: glob errors are impossible after compile-time validation,
// and literal patterns fall back to exact equality.
func (p Pattern) Matches(path string) bool {
	if p.literal {
		return path == strings.TrimPrefix(p.source, "/")
	}
	for _, glob := range p.globs {
		if match, err := doublestar.Match(glob, path); err == nil && match {
			return true
		}
	}
	return false
}

// Source returns the pattern as written in the rule file.
func (p Pattern) Source() string {
	return p.source
}
