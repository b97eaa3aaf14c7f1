package inspect

import "github.com/charmbracelet/lipgloss"

// Color palette for the inspect command output
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple - field names
	mutedColor   = lipgloss.Color("#626262") // Gray - offsets, raw hex
	textColor    = lipgloss.Color("#FFFFFF") // White - decoded values
	accentColor  = lipgloss.Color("#43BF6D") // Green - header line
)

var (
	// headerStyle is for the summary line above the field table
	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// offsetStyle is for the byte-offset column (e.g. "[02-03]")
	offsetStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// hexStyle is for the raw bytes column
	hexStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// fieldStyle is for the field-name column
	fieldStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// valueStyle is for the decoded-value column
	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)
)
