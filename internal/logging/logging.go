package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// The TUI owns the terminal, so diagnostics go to a file instead of stderr.

var logger = zerolog.Nop()

// Setup opens the log file and installs the package logger. A failure to
// open the file leaves the no-op logger in place; the UI stays usable.
func Setup(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
	return nil
}

// Logger returns the active logger.
func Logger() zerolog.Logger {
	return logger
}

// Error logs a failed operation.
func Error(op string, err error) {
	logger.Error().Str("op", op).Err(err).Msg("operation failed")
}

// Warn logs a recoverable inconsistency, such as a corrupt folder chain.
func Warn(op, detail string) {
	logger.Warn().Str("op", op).Msg(detail)
}
