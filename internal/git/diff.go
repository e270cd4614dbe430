package git

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	f "github.com/pullgate/codeowners-gate/pkg/functional"
)

// DiffContext names the two states being compared and where to run git.
type DiffContext struct {
	Base       string
	Head       string
	Dir        string
	IgnoreDirs []string
}

// Diff exposes the set of paths touched between base and head.
type Diff interface {
	ChangedPaths() []string
	Context() DiffContext
}

type gitDiff struct {
	context DiffContext
	paths   []string
}

// NewDiff runs `git diff base...head` in the context directory and parses
// the output into a changed-path set. Both sides of a rename count as
// changed. Failures (git errors, unparsable output) are hard errors.
func NewDiff(context DiffContext) (Diff, error) {
	executor := newRealGitExecutor(context.Dir)
	return newDiffWithExecutor(context, executor)
}

func newDiffWithExecutor(context DiffContext, executor gitCommandExecutor) (Diff, error) {
	output, err := executor.execute("git", "diff", "-U0", fmt.Sprintf("%s...%s", context.Base, context.Head))
	if err != nil {
		return nil, fmt.Errorf("diff %s...%s failed: %w", context.Base, context.Head, err)
	}
	fileDiffs, err := diff.ParseMultiFileDiff(output)
	if err != nil {
		return nil, fmt.Errorf("parsing diff output: %w", err)
	}

	paths := make([]string, 0, len(fileDiffs))
	for _, d := range fileDiffs {
		if name := cleanDiffName(d.OrigName); name != "" {
			paths = append(paths, name)
		}
		if name := cleanDiffName(d.NewName); name != "" {
			paths = append(paths, name)
		}
	}
	paths = f.RemoveDuplicates(paths)
	paths = f.Filtered(paths, func(path string) bool {
		for _, dir := range context.IgnoreDirs {
			if strings.HasPrefix(path, dir) {
				return false
			}
		}
		return true
	})

	return &gitDiff{context: context, paths: paths}, nil
}

func (gd *gitDiff) ChangedPaths() []string {
	return gd.paths
}

func (gd *gitDiff) Context() DiffContext {
	return gd.context
}

// cleanDiffName strips the a/ or b/ prefix git puts on diff names and
// drops the /dev/null placeholder used for creations and deletions.
func cleanDiffName(name string) string {
	if name == "/dev/null" || name == "" {
		return ""
	}
	if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
		return name[2:]
	}
	return name
}
