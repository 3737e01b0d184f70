package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	White       = lipgloss.Color("#e0e0e0")

	// Tables
	BorderStyle = lipgloss.NewStyle().
			Foreground(DarkGreen)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1)

	IndexStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Align(lipgloss.Right).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(White).
			Padding(0, 1)

	// Match lines
	CountStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	NameStyle = lipgloss.NewStyle().
			Foreground(Green)

	// Status
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(MedGreen)
)
