// Package output provides terminal output utilities: logging, styles, task
// announcements, tables and tree rendering.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig holds logging configuration resolved from flags.
type LogConfig struct {
	// Verbosity is the count of -v flags. 0 logs at info level, 1 at debug
	// level, 2 or more additionally reports timestamps and callers.
	Verbosity int

	// Writer is the log destination. Defaults to os.Stderr.
	Writer io.Writer
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(cfg LogConfig) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := log.InfoLevel
	if cfg.Verbosity > 0 {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbosity > 1,
		ReportCaller:    cfg.Verbosity > 1,
		TimeFormat:      "15:04:05",
	})
}

// SetOutput redirects the package-level logger, keeping its level and options.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ComponentLogger returns a child logger whose prefix names a component
// path relative to the project root.
func ComponentLogger(rel string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(rel))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
