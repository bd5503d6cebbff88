package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultProgram is the notification facility invoked by the osascript sender.
const DefaultProgram = "osascript"

// Sender delivers a formatted notification to the OS
type Sender interface {
	Send(n Notification) error
}

// osascriptSender implements Sender by running "<program> -e <script>"
type osascriptSender struct {
	program string
	logger  *slog.Logger
}

// NewSender creates a sender that runs program. An empty program selects DefaultProgram.
func NewSender(program string, logger *slog.Logger) Sender {
	if program == "" {
		program = DefaultProgram
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &osascriptSender{
		program: program,
		logger:  logger,
	}
}

// Script builds the AppleScript expression for n.
// Message and title are not escaped; see the package documentation.
func Script(n Notification) string {
	return fmt.Sprintf(`display notification "%s" with title "%s" sound name "%s"`,
		n.Message, n.Title, n.Sound)
}

// Send runs the program once and waits for it. Only a failure to start or
// wait on the program is reported; the program's own exit status is logged.
func (s *osascriptSender) Send(n Notification) error {
	// #nosec G204 - program comes from configuration
	cmd := exec.Command(s.program, "-e", Script(n))
	_, err := cmd.Output()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		s.logger.Debug("notification program exited non-zero",
			"program", s.program,
			"status", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(string(exitErr.Stderr)))
		return nil
	}
	return fmt.Errorf("run %s: %w", s.program, err)
}
