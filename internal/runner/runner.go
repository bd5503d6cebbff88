// Package runner executes a command line through the system shell and
// classifies how it ended.
package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// DefaultShell is the interpreter used when none is configured.
const DefaultShell = "sh"

// Kind classifies an Outcome.
type Kind int

const (
	// Success means the shell exited with status 0.
	Success Kind = iota
	// Failure means the shell ran but exited non-zero or was killed.
	Failure
	// IOFailure means the shell could not be started or waited on.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case IOFailure:
		return "io-failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CommandError is a completed command with a non-zero status.
type CommandError struct {
	Status int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Failed to run command: %d", e.Status)
}

// Outcome is the classified result of one run.
// Status is meaningful only for Failure. Err is nil only for Success.
type Outcome struct {
	Kind   Kind
	Status int
	Err    error
}

// ExitCode is the process exit code that reports this outcome.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case Success:
		return 0
	case Failure:
		return o.Status
	default:
		return 1
	}
}

// Runner spawns commands via "<Shell> -c <line>" with the parent's stdio.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// New returns a Runner for shell wired to the process's standard streams.
// An empty shell selects DefaultShell.
func New(shell string, logger *slog.Logger) *Runner {
	if shell == "" {
		shell = DefaultShell
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run executes line and blocks until it terminates. There is no timeout.
func (r *Runner) Run(line string) Outcome {
	// #nosec G204 - running the user's command line is the point of this tool
	cmd := exec.Command(r.Shell, "-c", line)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return Outcome{Kind: IOFailure, Err: fmt.Errorf("start %s: %w", r.Shell, err)}
	}
	r.Logger.Info("run command", "command", line)

	err := cmd.Wait()
	if err == nil {
		return Outcome{Kind: Success}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		// -1 when the process was terminated by a signal
		if status <= 0 {
			status = 1
		}
		return Outcome{Kind: Failure, Status: status, Err: &CommandError{Status: status}}
	}
	return Outcome{Kind: IOFailure, Err: fmt.Errorf("wait %s: %w", r.Shell, err)}
}
