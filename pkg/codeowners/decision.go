package codeowners

import (
	"fmt"
	"io"
	"strings"
)

// Verdict is the ownership resolution for one changed path.
type Verdict struct {
	Path    string
	Owners  []Slug
	Matched bool
}

// Decide reports whether requester owns every changed path. It is false
// when the changed-path list is empty, when any path is unowned, or when
// any path resolves to an owner set that does not contain the requester.
// Evaluation short-circuits on the first failing path. Per-path detail is
// written to info.
func Decide(rules RuleSet, paths []string, requester Slug, info io.Writer) bool {
	if len(paths) == 0 {
		fmt.Fprintln(info, "No paths were changed. There is nothing for the user to own.")
		return false
	}
	for _, path := range paths {
		owners := rules.Resolve(path)
		if !ContainsSlug(owners, requester) {
			fmt.Fprintf(info, "User %s is not a codeowner of path %s%s\n", requester, path, ownersSuffix(owners))
			return false
		}
		fmt.Fprintf(info, "User %s is a codeowner of path %s\n", requester, path)
	}
	return true
}

// Verdicts resolves every changed path without short-circuiting, for
// verbose output and the inspection CLI.
func Verdicts(rules RuleSet, paths []string, requester Slug) []Verdict {
	verdicts := make([]Verdict, 0, len(paths))
	for _, path := range paths {
		owners := rules.Resolve(path)
		verdicts = append(verdicts, Verdict{
			Path:    path,
			Owners:  owners,
			Matched: ContainsSlug(owners, requester),
		})
	}
	return verdicts
}

func ownersSuffix(owners []Slug) string {
	if len(owners) == 0 {
		return " (unowned)"
	}
	return fmt.Sprintf(" (owned by %s)", strings.Join(OriginalStrings(owners), " "))
}
