package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title bar across the top of the browse view
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// The file under the cursor
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// Files away from the cursor
	FileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Status line for action results and printed paths
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Help line at the bottom
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// Key column in the bindings table
	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#81A1C1"))
)
