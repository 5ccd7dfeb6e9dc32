package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles, emphasis

	Comment = "#727072" // Dim text, help
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	LinkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))

	// Diff line styles for the check command
	AddedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	RemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
)
