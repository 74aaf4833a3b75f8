package tui

import (
	"os"
	"path/filepath"
	"testing"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcmckee/SortPictures/internal/action"
	"github.com/wcmckee/SortPictures/internal/sequence"
)

func newBrowseModel(t *testing.T, files ...string) *Model {
	t.Helper()
	seq, err := sequence.New(files)
	require.NoError(t, err)
	return New(seq, action.NewRegistry())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseNavigation(t *testing.T) {
	m := newBrowseModel(t, "/pics/a.jpg", "/pics/b.jpg", "/pics/c.jpg")

	m.Update(keyRunes("j"))
	assert.Equal(t, "/pics/b.jpg", m.dispatcher.Current())

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	alsrt.Equal(t, "/pics/c.jpg", m.dispatcher.Current(), "must stop at the last file")

	m.Update(keyRunes("k"))
	assert.Equal(t, "/pics/b.jpg", m.dispatcher.Current())
}

func TestBrowseViewShowsCursorAndPosition(t *testing.T) {
	m := newBrowseModel(t, "/pics/a.jpg", "/pics/b.jpg", "/pics/c.jpg")
	m.Update(keyRunes("j"))

	view := m.View()
	assert.Contains(t, view, "b.jpg (2/3)")
	assert.Contains(t, view, "> b.jpg")
	assert.Contains(t, view, "  a.jpg")
}

func TestBrowsePrintPath(t *testing.T) {
	m := newBrowseModel(t, "/pics/a.jpg")

	m.Update(keyRunes("p"))
	assert.Equal(t, "/pics/a.jpg", m.status)
}

func TestBrowseBoundAction(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "cur.jpg")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	destDir := filepath.Join(tmpDir, "dest")
	require.NoError(t, os.Mkdir(destDir, 0755))

	seq, err := sequence.New([]string{src})
	require.NoError(t, err)
	registry := action.NewRegistry()
	require.NoError(t, registry.BindMove("m:"+destDir, false))
	m := New(seq, registry)

	m.Update(keyRunes("m"))
	alsrt.True(t, fileExists(filepath.Join(destDir, "cur.jpg")))
	assert.Contains(t, m.status, "move to "+destDir)
}

func TestBrowseUnboundRuneIsNoOp(t *testing.T) {
	m := newBrowseModel(t, "/pics/a.jpg")

	m.Update(keyRunes("x"))
	assert.Empty(t, m.status)
	assert.Equal(t, "/pics/a.jpg", m.dispatcher.Current())
}

func TestBrowseQuitKeys(t *testing.T) {
	m := newBrowseModel(t, "/pics/a.jpg")

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewportClamping(t *testing.T) {
	first, last := viewport(0, 3, 10)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)

	first, last = viewport(50, 100, 10)
	assert.Equal(t, 45, first)
	assert.Equal(t, 55, last)

	first, last = viewport(99, 100, 10)
	assert.Equal(t, 90, first)
	assert.Equal(t, 100, last)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
