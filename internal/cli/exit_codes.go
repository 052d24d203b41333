package cli

import (
	"errors"
)

// Exit codes for the wintoast CLI
const (
	// ExitSuccess indicates the notification was shown or help was printed
	ExitSuccess = 0

	// ExitFailure indicates a configuration, validation or display error
	ExitFailure = 1
)

// exitError is an error that carries the process exit code for the error it wraps.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError wraps err so that ExitCode reports code for it.
func NewExitError(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitFailure
}
