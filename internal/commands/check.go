package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mindbridge/internal/diff"
	"mindbridge/internal/styles"
)

// Check round-trips a document through the opposite format and reports
// anything the conversion cannot preserve. Exits non-zero on drift so
// it can gate scripts.
func Check(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mindbridge check <file>")
		os.Exit(1)
	}
	path := args[0]

	cfg := loadConfig()
	log, cleanup := newLogger(cfg)
	defer cleanup()

	content, err := readInput(path)
	if err != nil {
		log.FileError(path, err)
		fail("Failed to read input: " + err.Error())
	}

	unified, err := diff.Roundtrip(filepath.Base(path), content, isFreemindPath(path), writeOptions(cfg))
	if err != nil {
		log.ConversionError(path, err)
		fail("Check failed: " + err.Error())
	}

	if unified == "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Round trip is lossless"))
		return
	}

	log.Lossy(path, diff.CountChanges(unified))
	fmt.Println(styles.WarningStyle.Render("! Round trip drifts:"))
	printDiff(unified)
	os.Exit(1)
}

func printDiff(unified string) {
	for _, line := range strings.Split(strings.TrimRight(unified, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Println(styles.DimStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Println(styles.AddedStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Println(styles.RemovedStyle.Render(line))
		default:
			fmt.Println(line)
		}
	}
}
