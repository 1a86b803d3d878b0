// Package log provides structured diagnostic logging.
// Entries go to voxboard.log in the voxboard home directory as JSON
// lines, because stdout belongs to the TUI.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const logFile = "voxboard.log"

// New creates a logger writing JSON lines to voxboard.log inside dir.
// Creates the directory if it does not already exist. Every entry
// carries a run field identifying this process invocation.
func New(dir, level string) (*logrus.Entry, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(parseLevel(level))

	return logger.WithField("run", uuid.NewString()), nil
}

// Discard returns a logger that drops everything. Used by tests and as
// a fallback when the log file cannot be opened.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
