package commands

import (
	"errors"
	"fmt"

	"github.com/jrazmi/artisan/app/generators/scaffold"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError covers conflicts, missing models and I/O failures.
	ExitGeneralError = 1
)

// ExitError carries the process exit code for a failed command. Printed is
// set when the user already saw a message for it.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for err.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneralError
}

// report prints the outcome of one generation and converts a failure into an
// ExitError. Conflicts and missing prerequisites are reported through their
// message only.
func (a *app) report(res scaffold.Result, err error) error {
	if err == nil {
		a.console.Info("%s", res.Message)
		return nil
	}

	if res.Message != "" && (errors.Is(err, scaffold.ErrAlreadyExists) || errors.Is(err, scaffold.ErrPrerequisiteMissing)) {
		a.console.Error("%s", res.Message)
		return &ExitError{Err: err, Code: ExitGeneralError, Printed: true}
	}

	return &ExitError{Err: fmt.Errorf("%s [%s]: %w", res.Kind, res.Name, err), Code: ExitGeneralError}
}
