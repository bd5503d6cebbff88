// Package invocation turns raw command-line input into a validated Plan.
//
// A Plan carries exactly one Action: either a literal message to display or a
// command line to run. Callers switch on the concrete Action type and never
// see a "both" or "neither" state.
package invocation

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/notify/internal/sound"
)

// Action is the requested work. Implemented only by Literal and Command.
type Action interface {
	action()
}

// Literal displays Text without running anything.
type Literal struct {
	Text string
}

// Command runs Args through the shell as one command line.
type Command struct {
	Args []string
}

func (Literal) action() {}
func (Command) action() {}

// Line joins the arguments with single spaces.
func (c Command) Line() string {
	return strings.Join(c.Args, " ")
}

// Plan is the resolved request.
type Plan struct {
	Action Action
	Sound  sound.Sound
}

// UsageError reports missing or conflicting arguments.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Reason)
}

// Resolve validates that exactly one of message or args was supplied.
// message is nil when the --message flag was not given; an explicitly empty
// message still counts as supplied.
func Resolve(message *string, args []string, s sound.Sound) (Plan, error) {
	switch {
	case message != nil && len(args) > 0:
		return Plan{}, &UsageError{Reason: "--message cannot be used together with a command"}
	case message != nil:
		return Plan{Action: Literal{Text: *message}, Sound: s}, nil
	case len(args) > 0:
		cmdArgs := make([]string, len(args))
		copy(cmdArgs, args)
		return Plan{Action: Command{Args: cmdArgs}, Sound: s}, nil
	default:
		return Plan{}, &UsageError{Reason: "one of --message or a command is required"}
	}
}
