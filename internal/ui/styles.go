// Package ui provides terminal styles and prompts for the redistjar CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors and styles
var (
	ColorBlue   = lipgloss.Color("63")  // Paths
	ColorPurple = lipgloss.Color("141") // Titles
	ColorGreen  = lipgloss.Color("42")  // Success
	ColorYellow = lipgloss.Color("220") // Warning
	ColorRed    = lipgloss.Color("196") // Error
	ColorGray   = lipgloss.Color("240") // Subtle text

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true).
			PaddingLeft(2)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)

	// Emoji icons
	IconSuccess = "✅"
	IconWarning = "⚠️ "
	IconError   = "❌"
	IconPackage = "📦"
	IconLink    = "🔗"
	IconWatch   = "👀"
	IconTrash   = "🗑️ "
)
