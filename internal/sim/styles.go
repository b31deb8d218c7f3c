package sim

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("208")
	colorMuted  = lipgloss.Color("240")
	colorOK     = lipgloss.Color("42")
	colorDeny   = lipgloss.Color("196")

	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	iconStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle       = lipgloss.NewStyle().Foreground(colorOK)
	denyStyle     = lipgloss.NewStyle().Foreground(colorDeny)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
