package codeowners

import "strings"

// Slug is a GitHub handle (@user or @org/team) with case-insensitive
// comparison semantics. GitHub treats handles as case-insensitive, so the
// original casing is kept for display while a lowercase form is used for
// equality. The zero value is not valid - use NewSlug.
type Slug struct {
	original   string
	normalized string
}

// NewSlug creates a Slug, preserving the original casing for display.
func NewSlug(name string) Slug {
	return Slug{
		original:   name,
		normalized: strings.ToLower(name),
	}
}

// Equals performs case-insensitive comparison with another Slug.
func (s Slug) Equals(other Slug) bool {
	return s.normalized == other.normalized
}

// Original returns the handle as written in the rule file.
func (s Slug) Original() string {
	return s.original
}

// Normalized returns the lowercase form, suitable for map keys.
func (s Slug) Normalized() string {
	return s.normalized
}

func (s Slug) String() string {
	return s.original
}

// NewSlugs converts a slice of handle strings to Slugs.
func NewSlugs(names []string) []Slug {
	if names == nil {
		return nil
	}
	slugs := make([]Slug, len(names))
	for i, name := range names {
		slugs[i] = NewSlug(name)
	}
	return slugs
}

// OriginalStrings extracts the as-written handles from a Slug slice.
func OriginalStrings(slugs []Slug) []string {
	result := make([]string, len(slugs))
	for i, s := range slugs {
		result[i] = s.Original()
	}
	return result
}

// ContainsSlug reports whether target is in slugs (case-insensitive).
func ContainsSlug(slugs []Slug, target Slug) bool {
	for _, s := range slugs {
		if s.Equals(target) {
			return true
		}
	}
	return false
}
