// Package app drives one invocation: run the requested command (or take the
// literal message), notify about the result, and pick the exit code.
package app

import (
	"fmt"
	"log/slog"

	"github.com/ariel-frischer/notify/internal/invocation"
	"github.com/ariel-frischer/notify/internal/runner"
	"github.com/ariel-frischer/notify/internal/sound"
)

// Titles used for failure notifications.
const (
	TitleNotifyFailed = "Notify Failed"
	TitleRunFailed    = "Run Failed"
)

// Notifier dispatches one notification. An empty title selects the fallback.
type Notifier interface {
	Notify(title, message string, s sound.Sound) error
}

// CommandRunner executes a shell command line.
type CommandRunner interface {
	Run(line string) runner.Outcome
}

// Driver wires the runner and notifier together.
type Driver struct {
	notifier Notifier
	runner   CommandRunner
	logger   *slog.Logger
}

// NewDriver creates a Driver.
func NewDriver(notifier Notifier, r CommandRunner, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		notifier: notifier,
		runner:   r,
		logger:   logger,
	}
}

// Run executes plan and returns the process exit code.
// The exit code reflects the command's outcome, never a notifier failure
// that happens while reporting it.
func (d *Driver) Run(plan invocation.Plan) int {
	switch action := plan.Action.(type) {
	case invocation.Literal:
		return d.runLiteral(action, plan.Sound)
	case invocation.Command:
		return d.runCommand(action, plan.Sound)
	default:
		d.logger.Error("unknown action", "action", fmt.Sprintf("%T", plan.Action))
		return 1
	}
}

func (d *Driver) runLiteral(action invocation.Literal, s sound.Sound) int {
	err := d.notifier.Notify("", action.Text, s)
	if err == nil {
		return 0
	}

	d.bestEffort(TitleNotifyFailed, fmt.Sprintf("message: %s exit %v", action.Text, err), s)
	return 1
}

func (d *Driver) runCommand(action invocation.Command, s sound.Sound) int {
	line := action.Line()
	outcome := d.runner.Run(line)
	d.logger.Info("command finished", "outcome", outcome.Kind.String(), "exit", outcome.ExitCode())

	if outcome.Kind == runner.Success {
		d.bestEffort("", line, s)
		return 0
	}

	d.bestEffort(TitleRunFailed, fmt.Sprintf("command: %s exit %v", line, outcome.Err), s)
	return outcome.ExitCode()
}

// bestEffort dispatches a notification and only logs a failure.
func (d *Driver) bestEffort(title, message string, s sound.Sound) {
	if err := d.notifier.Notify(title, message, s); err != nil {
		d.logger.Warn("notification failed", "title", title, "error", err)
	}
}
