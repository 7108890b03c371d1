package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles for the browse view.
//
//nolint:gochecknoglobals // Render styles, static for the process.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true)

	activeColumnStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("86"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	selectedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212"))

	currentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	dimStyle = lipgloss.NewStyle().Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))
)
