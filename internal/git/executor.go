package git

import "os/exec"

// gitCommandExecutor abstracts subprocess execution so tests can substitute
// canned output for git invocations.
type gitCommandExecutor interface {
	execute(command string, args ...string) ([]byte, error)
}

type realGitExecutor struct {
	dir string
}

func newRealGitExecutor(dir string) gitCommandExecutor {
	return &realGitExecutor{dir: dir}
}

func (e *realGitExecutor) execute(command string, args ...string) ([]byte, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = e.dir
	return cmd.Output()
}
