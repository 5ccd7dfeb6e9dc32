package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// WithRun tags every record with the short run ID of one CLI invocation
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{Logger: l.Logger.With("run", runID)}
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(source, direction string) {
	l.Info("conversion started",
		"source", source,
		"direction", direction)
}

// ConversionCompleted logs the completion of a conversion
func (l *Logger) ConversionCompleted(dest string, bytes int, duration time.Duration) {
	l.Info("conversion completed",
		"dest", dest,
		"bytes", bytes,
		"duration", duration.Round(time.Microsecond))
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source string, err error) {
	l.Error("conversion failed",
		"source", source,
		"error", err)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(xmlVersion string, foldDepth int) {
	l.Debug("config loaded",
		"xml_version", xmlVersion,
		"fold_depth", foldDepth)
}

// Lossy logs a round-trip check that found drift
func (l *Logger) Lossy(file string, diffLines int) {
	l.Warn("round trip not lossless",
		"file", file,
		"diff_lines", diffLines)
}
