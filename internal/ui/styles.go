package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	bulletUser    = "♥"
	bulletDefault = "·"
)

// SetTheme tweaks the palette. Same names the old terminal themes
// used: classic (default), neon, mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		titleStyle = titleStyle.Foreground(lipgloss.Color("201"))
		accentStyle = accentStyle.Foreground(lipgloss.Color("51"))
		successStyle = successStyle.Foreground(lipgloss.Color("46"))
		bulletUser = "◆"
	case "mono":
		titleStyle = lipgloss.NewStyle().Bold(true)
		accentStyle = lipgloss.NewStyle()
		successStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle().Bold(true)
		clockStyle = lipgloss.NewStyle().Bold(true)
		bulletUser = "*"
		bulletDefault = "-"
	}
}
