package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"mindbridge/internal/freemind"
	"mindbridge/internal/mindmap"
	"mindbridge/internal/puml"
	"mindbridge/internal/styles"
)

// Info prints a styled summary of a mind map file without converting it
func Info(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mindbridge info <file>")
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

	var m *mindmap.Map
	format := "plantuml"
	if isFreemindPath(path) {
		format = "freemind"
		m, err = freemind.Parse(content)
	} else {
		m, err = puml.Parse(content)
	}
	if err != nil {
		log.ConversionError(path, err)
		fail("Parse failed: " + err.Error())
	}

	rootLabel := ""
	if len(m.Roots) > 0 {
		rootLabel = firstLine(m.Roots[0].Text)
	}

	fmt.Println(styles.TitleStyle.Render(path))
	printRow("Format", format)
	if m.Version != "" {
		printRow("Version", m.Version)
	}
	printRow("Root", rootLabel)
	printRow("Nodes", strconv.Itoa(m.NodeCount()))
	printRow("Max depth", strconv.Itoa(m.MaxDepth()))
	printRow("Links", strconv.Itoa(m.LinkCount()))
}

func printRow(label, value string) {
	fmt.Printf("%s %s\n",
		styles.LabelStyle.Render(fmt.Sprintf("%-10s", label)),
		value)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
