package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcmckee/SortPictures/internal/action"
)

func TestRenderKeyTable(t *testing.T) {
	registry := action.NewRegistry()
	require.NoError(t, registry.BindCommand("e:echo %s"))

	table := RenderKeyTable(registry)

	assert.Contains(t, table, "F12")
	assert.Contains(t, table, "rotate clockwise")
	assert.Contains(t, table, "e")
	assert.Contains(t, table, "run: echo %s")
}
