package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))

	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB"))

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	graphDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))

	statLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89DCEB"))

	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)
