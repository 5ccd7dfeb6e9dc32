package main

import (
	"fmt"
	"os"

	"mindbridge/internal/commands"
	"mindbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert", "c":
		commands.Convert(os.Args[2:])
	case "check":
		commands.Check(os.Args[2:])
	case "info":
		commands.Info(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("mindbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`mindbridge - Convert mind maps between Freemind and PlantUML

Usage:
  mindbridge <command> [options]

Commands:
  convert     Convert a file (.mm reads Freemind, anything else PlantUML)
  check       Round-trip a file and report what conversion cannot preserve
  info        Show a summary of a mind map file
  version     Show version information
  help        Show this help message

Examples:
  mindbridge convert ideas.mm -o ideas.puml
  mindbridge convert ideas.puml -o ideas.mm
  mindbridge convert --from puml - < notes.txt
  mindbridge check ideas.mm
  mindbridge info ideas.puml

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
