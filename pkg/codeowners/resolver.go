package codeowners

// Match returns the highest-index rule whose pattern matches path. Rules
// are scanned in reverse so that later, more specific declarations override
// earlier general ones ("last match wins").
func (rs RuleSet) Match(path string) (*Rule, bool) {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].Pattern.Matches(path) {
			return &rs[i], true
		}
	}
	return nil, false
}

// Resolve returns the owner set for path: the owners of the last matching
// rule, or nil when no rule matches (the path is unowned).
func (rs RuleSet) Resolve(path string) []Slug {
	if rule, ok := rs.Match(path); ok {
		return rule.Owners
	}
	return nil
}
