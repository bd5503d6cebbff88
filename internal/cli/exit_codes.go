package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the notify CLI. A failed command's own status is passed
// through unchanged; these cover everything else.
const (
	// ExitSuccess indicates the notification was sent or the command exited 0
	ExitSuccess = 0

	// ExitFailure covers usage errors, config errors, a failed literal
	// notification, and failures to start or wait on the shell
	ExitFailure = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
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

func isExitError(err error) bool {
	var e *exitError
	return errors.As(err, &e)
}
