package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a *logrus.Logger to the Logger interface.
// Used for leveled, timestamped output when HISTDL_DEBUG is set.
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger creates a logger backed by the given *logrus.Logger.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{logger: l}
}

// NewLogrus creates a logrus-backed logger writing to w.
// Debug mode lowers the level to DebugLevel and enables full timestamps.
func NewLogrus(w io.Writer, debug bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return &LogrusLogger{logger: l}
}

// Info logs an informational message at logrus info level.
func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warning logs a warning message at logrus warn level.
func (l *LogrusLogger) Warning(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error logs an error message at logrus error level.
func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// Close is a no-op for LogrusLogger (output writer is owned by the caller).
func (l *LogrusLogger) Close() error {
	return nil
}

// Ensure LogrusLogger satisfies the Logger interface.
var _ Logger = (*LogrusLogger)(nil)
