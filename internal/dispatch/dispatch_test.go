package dispatch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/wcmckee/SortPictures/internal/action"
	"github.com/wcmckee/SortPictures/internal/dispatch"
	"github.com/wcmckee/SortPictures/internal/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records the hook calls the dispatcher makes.
type fakeSurface struct {
	reloads   int
	rotations []bool
}

func (f *fakeSurface) Reload()        { f.reloads++ }
func (f *fakeSurface) Rotate(cw bool) { f.rotations = append(f.rotations, cw) }

func newDispatcher(t *testing.T, files ...string) (*dispatch.Dispatcher, *fakeSurface, *bytes.Buffer, *action.Registry) {
	t.Helper()
	seq, err := sequence.New(files)
	require.NoError(t, err)
	registry := action.NewRegistry()
	surface := &fakeSurface{}
	var out bytes.Buffer
	return dispatch.New(seq, registry, surface, &out), surface, &out, registry
}

func TestNavigation(t *testing.T) {
	d, surface, _, _ := newDispatcher(t, "a", "b", "c")

	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	assert.Equal(t, "b", d.Current())
	assert.Equal(t, 1, surface.reloads, "cursor change reloads the image")

	d.Handle(dispatch.KeyNamed(dispatch.NamePrevious))
	assert.Equal(t, "a", d.Current())
	assert.Equal(t, 2, surface.reloads)
}

func TestNavigationBoundariesSuppressReload(t *testing.T) {
	d, surface, _, _ := newDispatcher(t, "only")

	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	d.Handle(dispatch.KeyNamed(dispatch.NamePrevious))
	assert.Equal(t, 0, surface.reloads, "boundary no-ops must not redraw")
	assert.Equal(t, "only", d.Current())
}

func TestPrintPath(t *testing.T) {
	d, surface, out, _ := newDispatcher(t, "/pics/a.jpg", "/pics/b.jpg")

	d.Handle(dispatch.KeyNamed(dispatch.NamePrint))
	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	d.Handle(dispatch.KeyNamed(dispatch.NamePrint))

	assert.Equal(t, "/pics/a.jpg\n/pics/b.jpg\n", out.String())
	assert.Equal(t, 1, surface.reloads, "printing must not reload")
}

func TestRotation(t *testing.T) {
	d, surface, _, _ := newDispatcher(t, "a")

	d.Handle(dispatch.KeyNamed(dispatch.NameRotateCW))
	d.Handle(dispatch.KeyNamed(dispatch.NameRotateCCW))

	assert.Equal(t, []bool{true, false}, surface.rotations)
	assert.Equal(t, 0, surface.reloads, "rotation redraws without reloading")
}

func TestBoundActionReceivesCurrentPath(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "cur.jpg")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	destDir := filepath.Join(tmpDir, "dest")
	require.NoError(t, os.Mkdir(destDir, 0755))

	d, _, _, registry := newDispatcher(t, src)
	require.NoError(t, registry.BindMove("m:"+destDir, false))

	d.Handle(dispatch.KeyRune('m'))
	assert.FileExists(t, filepath.Join(destDir, "cur.jpg"))

	// The slot still points at the old path; the design accepts the stale
	// entry and navigation keeps working.
	assert.Equal(t, src, d.Current())
}

func TestUnboundKeyIsNoOp(t *testing.T) {
	d, surface, out, _ := newDispatcher(t, "a", "b")

	d.Handle(dispatch.KeyRune('x'))
	d.Handle(dispatch.Key{})

	assert.Equal(t, "a", d.Current())
	assert.Equal(t, 0, surface.reloads)
	assert.Empty(t, out.String())
}

func TestActionErrorDoesNotStopSession(t *testing.T) {
	tmpDir := t.TempDir()
	destDir := filepath.Join(tmpDir, "dest")
	require.NoError(t, os.Mkdir(destDir, 0755))

	// The sequence points at a path that no longer exists; the move fails at
	// invocation time but navigation must keep working.
	d, surface, _, registry := newDispatcher(t, filepath.Join(tmpDir, "ghost.jpg"), "b")
	require.NoError(t, registry.BindMove("m:"+destDir, false))

	d.Handle(dispatch.KeyRune('m'))
	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	assert.Equal(t, "b", d.Current())
	assert.Equal(t, 1, surface.reloads)
}

func TestPosition(t *testing.T) {
	d, _, _, _ := newDispatcher(t, "a", "b", "c")
	pos, total := d.Position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 3, total)

	d.Handle(dispatch.KeyNamed(dispatch.NameNext))
	pos, _ = d.Position()
	assert.Equal(t, 2, pos)
}
