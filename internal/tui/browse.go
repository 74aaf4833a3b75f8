// Package tui is the terminal browse mode: the same sequence, bindings and
// dispatcher as the window viewer, rendered as a file list instead of an
// image.
package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wcmckee/SortPictures/internal/action"
	"github.com/wcmckee/SortPictures/internal/dispatch"
	"github.com/wcmckee/SortPictures/internal/sequence"
)

// KeyMap defines the browse-mode keybindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Print key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the browse-mode keybinding set. The printable runes here
// are reserved in action.Registry so user bindings cannot shadow them.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next"),
	),
	Print: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "show path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the bubbletea model for browse mode. It doubles as the
// dispatcher's Surface: Reload is a no-op because View always renders from
// the current sequence state.
type Model struct {
	seq        *sequence.Sequencer
	registry   *action.Registry
	dispatcher *dispatch.Dispatcher
	keys       KeyMap
	printed    bytes.Buffer
	status     string
	showHelp   bool
	height     int
}

// New creates the browse model and its dispatcher.
func New(seq *sequence.Sequencer, registry *action.Registry) *Model {
	m := &Model{
		seq:      seq,
		registry: registry,
		keys:     DefaultKeyMap,
		height:   24,
	}
	m.dispatcher = dispatch.New(seq, registry, m, &m.printed)
	return m
}

// Reload implements dispatch.Surface; the next View call picks up the new
// cursor position.
func (m *Model) Reload() {}

// Rotate implements dispatch.Surface. There is no image to turn in the
// terminal.
func (m *Model) Rotate(clockwise bool) {
	m.status = "rotation needs the window viewer"
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.dispatcher.Handle(dispatch.KeyNamed(dispatch.NameNext))
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.dispatcher.Handle(dispatch.KeyNamed(dispatch.NamePrevious))
		return m, nil
	case key.Matches(msg, m.keys.Print):
		m.dispatcher.Handle(dispatch.KeyNamed(dispatch.NamePrint))
		m.status = strings.TrimRight(m.printed.String(), "\n")
		m.printed.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if a, ok := m.registry.Lookup(r); ok {
			m.dispatcher.Handle(dispatch.KeyRune(r))
			m.status = fmt.Sprintf("'%c': %s", r, a.Describe())
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	pos, total := m.dispatcher.Position()
	title := fmt.Sprintf("%s (%d/%d)", filepath.Base(m.dispatcher.Current()), pos, total)
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	files := m.seq.Files()
	cursor := m.seq.Position()
	first, last := viewport(cursor, len(files), m.listHeight())
	for i := first; i < last; i++ {
		name := filepath.Base(files[i])
		if i == cursor {
			b.WriteString(SelectedStyle.Render("> " + name))
		} else {
			b.WriteString(FileStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.status))
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(HelpStyle.Render(m.helpText()))
	} else {
		b.WriteString(HelpStyle.Render("? for help"))
	}
	return b.String()
}

func (m *Model) listHeight() int {
	// Title, blank line, status slot and help line
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) helpText() string {
	parts := []string{"j/↓ next", "k/↑ previous", "p show path", "q quit"}
	for _, r := range m.registry.Keys() {
		a, _ := m.registry.Lookup(r)
		parts = append(parts, fmt.Sprintf("%c %s", r, a.Describe()))
	}
	return strings.Join(parts, " · ")
}

// viewport clamps the visible window of the list around the cursor.
func viewport(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	first := cursor - height/2
	if first < 0 {
		first = 0
	}
	if first+height > total {
		first = total - height
	}
	return first, first + height
}

// Run enters the bubbletea event loop and blocks until the user quits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
