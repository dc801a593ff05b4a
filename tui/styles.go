package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette follows standard terminal dark themes.
var (
	ColorPrimary = lipgloss.Color("255") // White
	ColorAccent  = lipgloss.Color("39")  // Blue / Cyan
	ColorSuccess = lipgloss.Color("42")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorWarning = lipgloss.Color("214") // Orange
	ColorDim     = lipgloss.Color("240") // Dimmed text
)

var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleDimmed = lipgloss.NewStyle().Foreground(ColorDim)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).MarginBottom(1)
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Pick list item under the cursor
	StyleItemActive = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	StyleHelpKey  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleHelpDesc = lipgloss.NewStyle().Foreground(ColorDim)
)
