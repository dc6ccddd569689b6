// Package notify defines the toast notification interface consumed by the
// shell and a zap-backed default.
//
// The window and shortcut registries never post notifications themselves;
// callers sequencing backend work (mounting a drive, deleting apps) do.
package notify

import "go.uber.org/zap"

// Level classifies a toast
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier posts a user-visible toast message
type Notifier interface {
	Post(message string, level Level)
}

// LogNotifier writes toasts to the structured log. Used standalone in
// headless runs and as the tail of a fan-out in the server.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Post implements Notifier
func (n *LogNotifier) Post(message string, level Level) {
	switch level {
	case LevelError:
		n.logger.Error(message, zap.String("toast", string(level)))
	case LevelWarning:
		n.logger.Warn(message, zap.String("toast", string(level)))
	default:
		n.logger.Info(message, zap.String("toast", string(level)))
	}
}

// Multi fans a toast out to several notifiers
type Multi []Notifier

// Post implements Notifier
func (m Multi) Post(message string, level Level) {
	for _, n := range m {
		n.Post(message, level)
	}
}
