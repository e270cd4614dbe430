package codeowners

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Rule maps one path pattern to the handles that own matching paths.
// Owners may be empty: a pattern listed with no handles marks matching
// paths as explicitly unowned, overriding earlier rules.
type Rule struct {
	Pattern Pattern
	Owners  []Slug
}

// RuleSet is an ordered sequence of rules. Order is significant - later
// rules override earlier ones for overlapping patterns - so the parser
// must never reorder it.
type RuleSet []Rule

// ParseRules reads a CODEOWNERS-style rule file line by line. Blank lines
// and comment lines are skipped, and an inline "#" comment after the owner
// list is stripped. Each remaining line is "pattern [@handle ...]".
//
// Parsing is fail-soft: a malformed line (an owner token without the "@"
// prefix) is skipped with a warning rather than aborting, so a cosmetic
// mistake in the rule file can never break the check.
func ParseRules(r io.Reader, warn io.Writer) RuleSet {
	rules := make(RuleSet, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		pattern := fields[0]
		owners := fields[1:]
		for i, token := range owners {
			if strings.HasPrefix(token, "#") {
				owners = owners[:i]
				break
			}
		}

		if bad := badOwnerToken(owners); bad != "" {
			fmt.Fprintf(warn, "WARNING: skipping rule line with invalid owner %q: %s\n", bad, line)
			continue
		}

		rules = append(rules, Rule{
			Pattern: CompilePattern(pattern),
			Owners:  NewSlugs(owners),
		})
	}

	return rules
}

// badOwnerToken returns the first token that is not an @handle, or "".
func badOwnerToken(owners []string) string {
	for _, token := range owners {
		if !strings.HasPrefix(token, "@") || len(token) < 2 {
			return token
		}
	}
	return ""
}
