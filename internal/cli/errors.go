package cli

import (
	"errors"
	"fmt"

	"github.com/bjaus/jsontable"
)

// Exit codes for scriptability.
const (
	ExitError = 1
	ExitUsage = 2
	ExitData  = 65 // sysexits EX_DATAERR
)

// Error is a CLI failure carrying the process exit code.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func usageError(format string, args ...any) *Error {
	return &Error{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// classify wraps err with the exit code matching its cause.
func classify(err error) error {
	var cliErr *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &cliErr):
		return err
	case errors.Is(err, jsontable.ErrUnsupportedFormat), errors.Is(err, jsontable.ErrEmptyInput):
		return &Error{Code: ExitUsage, Err: err}
	case errors.Is(err, jsontable.ErrInvalidJSON), errors.Is(err, jsontable.ErrInvalidYAML):
		return &Error{Code: ExitData, Err: err}
	default:
		return &Error{Code: ExitError, Err: err}
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitError
}
