package git

import (
	"errors"
	"fmt"
	"strings"
)

// Rule-file discovery errors. Both are hard failures: the gate cannot run
// without exactly one rule file on the target ref.
var (
	ErrNoOwnersFile        = errors.New("no CODEOWNERS file found")
	ErrMultipleOwnersFiles = errors.New("multiple CODEOWNERS files found")
)

// ownersFileLocations are the candidate rule-file paths, checked in order.
var ownersFileLocations = []string{"CODEOWNERS", ".github/CODEOWNERS"}

// RefFileReader reads files pinned to a specific git ref. The gate reads
// CODEOWNERS from the target branch rather than the working tree so a pull
// request cannot smuggle in its own ownership rules.
type RefFileReader struct {
	ref      string
	dir      string
	executor gitCommandExecutor
}

// NewRefFileReader creates a RefFileReader for the given ref and repo dir.
func NewRefFileReader(ref string, dir string) *RefFileReader {
	return &RefFileReader{
		ref:      ref,
		dir:      dir,
		executor: newRealGitExecutor(dir),
	}
}

// ReadFile reads a file from the ref via `git show`.
func (r *RefFileReader) ReadFile(path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "/")

	output, err := r.executor.execute("git", "show", fmt.Sprintf("%s:%s", r.ref, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s from ref %s: %w", path, r.ref, err)
	}
	return output, nil
}

// PathExists checks whether a file exists on the ref.
func (r *RefFileReader) PathExists(path string) bool {
	path = strings.TrimPrefix(path, "/")

	_, err := r.executor.execute("git", "cat-file", "-e", fmt.Sprintf("%s:%s", r.ref, path))
	return err == nil
}

// FindOwnersFile locates the single CODEOWNERS file on the ref. Exactly one
// of the candidate locations must exist: none is ErrNoOwnersFile, more than
// one is ErrMultipleOwnersFiles (a second rule file could shadow the first).
func (r *RefFileReader) FindOwnersFile() (string, error) {
	found := ""
	for _, location := range ownersFileLocations {
		if !r.PathExists(location) {
			continue
		}
		if found != "" {
			return "", fmt.Errorf("%w: %s and %s", ErrMultipleOwnersFiles, found, location)
		}
		found = location
	}
	if found == "" {
		return "", fmt.Errorf("%w on ref %s", ErrNoOwnersFile, r.ref)
	}
	return found, nil
}
