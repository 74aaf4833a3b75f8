package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wcmckee/SortPictures/internal/action"
)

// RenderKeyTable renders the effective bindings, built-ins first, as a table
// for the keys subcommand.
func RenderKeyTable(registry *action.Registry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers("KEY", "ACTION")

	t.Row(KeyStyle.Render("↓ / →"), "next file")
	t.Row(KeyStyle.Render("↑ / ←"), "previous file")
	t.Row(KeyStyle.Render("F1"), "print path to stdout")
	t.Row(KeyStyle.Render("F11"), "rotate counter-clockwise")
	t.Row(KeyStyle.Render("F12"), "rotate clockwise")
	t.Row(KeyStyle.Render("Esc"), "quit")

	for _, r := range registry.Keys() {
		a, _ := registry.Lookup(r)
		t.Row(KeyStyle.Render(fmt.Sprintf("%c", r)), a.Describe())
	}
	return t.Render()
}
