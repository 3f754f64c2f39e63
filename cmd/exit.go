package cmd

import "fmt"

// ExitUsage is returned for invalid invocations, before any probe runs.
const ExitUsage = 2

// ExitError carries a process exit code out of a command. Err is printed to
// stderr when set; outcomes that already reported themselves leave it nil.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Err: err}
}
