package launcher

import "fmt"

// LaunchError reports that the combiner program could not be started: the
// program was missing, not executable, or died before producing an exit code.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a combiner run that started but exited non-zero. Code is
// the child's exit code, propagated verbatim.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Program, e.Code)
}
