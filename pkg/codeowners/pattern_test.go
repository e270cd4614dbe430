package codeowners

import "testing"

func TestPatternMatches(t *testing.T) {
	tt := []struct {
		pattern string
		cases   map[string]bool
	}{
		{
			"foo/bar",
			map[string]bool{
				"foo/bar":        true,
				"x/foo/bar":      true, // unanchored, suffix aligned on segment boundary
				"foo/bar/baz.py": false,
				"foo/bat/baz.py": false,
				"boo/bar/baz.py": false,
				"foo/bart":       false,
			},
		},
		{
			"*.js",
			map[string]bool{
				"foo.js":         true,
				"foo/bar/baz.js": true,
				"foo.py":         false,
				"foo/bar/baz.py": false,
			},
		},
		{
			"foo/bar/*.js",
			map[string]bool{
				"foo.js":           false,
				"foo/bar/baz.js":   true,
				"foo/bar/a/baz.js": false,
				"x/foo/bar/baz.js": true,
				"foo/bar/baz.py":   false,
			},
		},
		{
			"foo/bar/",
			map[string]bool{
				"foo/bar/baz":        true,
				"foo/bar/baz.py":     true,
				"foo/bar/baz/bip.py": true,
				"foo/bar":            false,
				"foo/barx/baz":       false,
			},
		},
		{
			"foo/bar/*",
			map[string]bool{
				"foo/bar/baz":        true,
				"foo/bar/baz.py":     true,
				"foo/bar":            false,
				"foo/bar/baz/bip.py": false,
			},
		},
		{
			"/docs/",
			map[string]bool{
				"docs/readme.md":   true,
				"docs/a/b.md":      true,
				"x/docs/readme.md": false,
				"docs":             false,
			},
		},
		{
			"/README.md",
			map[string]bool{
				"README.md":     true,
				"sub/README.md": false,
				"readme.md":     false, // case-sensitive
			},
		},
		{
			"docs",
			map[string]bool{
				"docs":           true,
				"docs/readme.md": true,
				"a/docs/b.md":    true,
				"a/b/docs":       true,
				"docsx/y":        false,
			},
		},
		{
			"*",
			map[string]bool{
				"main.go":   true,
				"a/b/c.txt": true,
			},
		},
		{
			"**/logs",
			map[string]bool{
				"logs":       true,
				"a/b/logs":   true,
				"a/b/logs.x": false,
			},
		},
	}

	for _, tc := range tt {
		pattern := CompilePattern(tc.pattern)
		for path, expected := range tc.cases {
			if pattern.Matches(path) != expected {
				t.Errorf("Expected %q matching %q to be %v", tc.pattern, path, expected)
			}
		}
	}
}

func TestPatternMalformed(t *testing.T) {
	// An unbalanced character class is not a valid glob. The pattern should
	// degrade to literal equality rather than failing.
	pattern := CompilePattern("a[b")
	if !pattern.literal {
		t.Errorf("Expected malformed pattern to compile as literal")
	}
	if !pattern.Matches("a[b") {
		t.Errorf("Expected literal pattern to match itself")
	}
	if pattern.Matches("ab") || pattern.Matches("x/a[b") {
		t.Errorf("Expected literal pattern to only match by exact equality")
	}
}

func TestPatternEmpty(t *testing.T) {
	for _, src := range []string{"", "/"} {
		pattern := CompilePattern(src)
		if pattern.Matches("anything") {
			t.Errorf("Expected pattern %q to match nothing", src)
		}
	}
}

func TestPatternSource(t *testing.T) {
	if src := CompilePattern("/docs/").Source(); src != "/docs/" {
		t.Errorf("Expected source to be preserved, got %q", src)
	}
}
