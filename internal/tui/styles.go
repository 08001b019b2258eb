package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorFocus = lipgloss.Color("#e5533d")
	colorBreak = lipgloss.Color("#2f9e44")
	colorMuted = lipgloss.Color("#868e96")

	frameStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	clockStyle      = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	motivationStyle = lipgloss.NewStyle().Italic(true)
	labelStyle      = lipgloss.NewStyle().Bold(true)
)

func modeStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
