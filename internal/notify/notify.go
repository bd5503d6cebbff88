package notify

import (
	"log/slog"

	"github.com/ariel-frischer/notify/internal/sound"
)

// DefaultTitle is used when a notification has no title.
const DefaultTitle = "from notify"

// Notification represents a single notification to dispatch
type Notification struct {
	// Title is the notification title
	Title string

	// Message is the notification body text
	Message string

	// Sound is played when the notification is shown
	Sound sound.Sound
}

// NewNotification creates a Notification, applying DefaultTitle when title is empty
func NewNotification(title, message string, s sound.Sound) Notification {
	if title == "" {
		title = DefaultTitle
	}
	return Notification{
		Title:   title,
		Message: message,
		Sound:   s,
	}
}

// Notifier formats notifications and hands them to a Sender.
type Notifier struct {
	sender Sender
	logger *slog.Logger
}

// New creates a Notifier that runs program (normally osascript).
func New(program string, logger *slog.Logger) *Notifier {
	return NewWithSender(NewSender(program, logger), logger)
}

// NewWithSender creates a Notifier with a custom sender (for testing).
func NewWithSender(sender Sender, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender: sender,
		logger: logger,
	}
}

// Notify dispatches one notification. The returned error describes the
// dispatch call itself, not anything being reported on.
func (n *Notifier) Notify(title, message string, s sound.Sound) error {
	notification := NewNotification(title, message, s)
	n.logger.Info("notify", "title", notification.Title, "message", notification.Message)
	return n.sender.Send(notification)
}
