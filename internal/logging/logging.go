// Package logging configures the logrus logger used for diagnostics.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level picks the log level for the debug and verbose switches. Without
// either only warnings and errors are shown.
func Level(debug, verbose bool) logrus.Level {
	switch {
	case debug:
		return logrus.DebugLevel
	case verbose:
		return logrus.InfoLevel
	default:
		return logrus.WarnLevel
	}
}

// New creates a logger writing plain text lines to out
func New(out io.Writer, level logrus.Level, colors bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      colors,
		DisableColors:    !colors,
	})
	return logger
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel, false)
}
