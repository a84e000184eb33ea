// Package ui holds the terminal styles used by rangectl.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Accent style for headings and committed ranges
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for weekday headers and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)

	// Edge marks the first and last day of a range
	Edge = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#A78BFA")).Bold(true)

	// Today underlines the current date
	Today = lipgloss.NewStyle().Underline(true)
)
