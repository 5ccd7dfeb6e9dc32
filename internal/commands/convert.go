package commands

import (
	"fmt"
	"os"
	"time"

	"mindbridge/internal/convert"
	"mindbridge/internal/styles"
)

// Convert converts one document between Freemind XML and PlantUML
// mindmap text. Direction follows the input extension (.mm reads
// Freemind, anything else reads PlantUML) unless --from overrides it.
// "-" reads standard input; without -o the result goes to standard
// output. Nothing is written when the conversion fails.
func Convert(args []string) {
	var input, output, from string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				i++
				output = args[i]
			}
		case "--from":
			if i+1 < len(args) {
				i++
				from = args[i]
			}
		default:
			input = args[i]
		}
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "Usage: mindbridge convert [-o output] [--from mm|puml] <file|->")
		os.Exit(1)
	}

	fromFreemind := isFreemindPath(input)
	switch from {
	case "":
	case "mm", "freemind":
		fromFreemind = true
	case "puml", "plantuml":
		fromFreemind = false
	default:
		fail("Unknown --from format: " + from + " (want mm or puml)")
	}

	cfg := loadConfig()
	log, cleanup := newLogger(cfg)
	defer cleanup()
	log.ConfigLoaded(cfg.XMLVersion, cfg.FoldDepth)

	content, err := readInput(input)
	if err != nil {
		log.FileError(input, err)
		fail("Failed to read input: " + err.Error())
	}

	direction := "puml->mm"
	if fromFreemind {
		direction = "mm->puml"
	}
	log.ConversionStarted(input, direction)

	start := time.Now()
	var result string
	if fromFreemind {
		result, err = convert.FreemindToPlantUML(content)
	} else {
		result, err = convert.PlantUMLToFreemind(content, writeOptions(cfg))
	}
	if err != nil {
		log.ConversionError(input, err)
		fail("Conversion failed: " + err.Error())
	}

	if err := writeOutput(output, result); err != nil {
		log.FileError(output, err)
		fail("Failed to write output: " + err.Error())
	}

	dest := output
	if dest == "" {
		dest = "stdout"
	}
	log.ConversionCompleted(dest, len(result), time.Since(start))

	if output != "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + output))
	}
}
