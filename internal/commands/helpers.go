package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mindbridge/internal/config"
	"mindbridge/internal/freemind"
	"mindbridge/internal/logger"
	"mindbridge/internal/styles"
)

// loadConfig loads the configuration or exits with a styled error
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to load config: " + err.Error()))
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the logger for one CLI invocation: stderr plus the
// configured log file when set, filtered to the configured level, every
// record tagged with a short random run ID so parallel invocations stay
// distinguishable.
func newLogger(cfg *config.Config) (*logger.Logger, func()) {
	runID := uuid.New().String()[:8]
	cleanup := func() {}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	w := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			w = io.MultiWriter(os.Stderr, f)
			cleanup = func() { f.Close() }
		}
	}

	return logger.NewWithLevel(w, level).WithRun(runID), cleanup
}

// readInput reads a file, or standard input when path is "-"
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeOutput writes to a file, or standard output when path is empty
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// isFreemindPath reports whether a path names a Freemind document.
// Anything that is not .mm (including stdin) is treated as PlantUML.
func isFreemindPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mm")
}

// writeOptions maps config onto the XML writer options
func writeOptions(cfg *config.Config) freemind.WriteOptions {
	return freemind.WriteOptions{
		Version:   cfg.XMLVersion,
		FoldDepth: cfg.FoldDepth,
		EmitIDs:   cfg.EmitIDs,
	}
}

// fail prints a styled error and exits
func fail(msg string) {
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}
