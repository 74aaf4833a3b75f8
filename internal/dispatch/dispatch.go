// Package dispatch routes keystrokes to their effects: built-in navigation,
// rotation and path printing first, then the user's bound actions. It knows
// nothing about the GUI toolkit; the presentation layer translates its own
// key events into Keys and implements the Surface hooks.
package dispatch

import (
	"fmt"
	"io"

	"github.com/wcmckee/SortPictures/internal/action"
	"github.com/wcmckee/SortPictures/internal/log"
	"github.com/wcmckee/SortPictures/internal/sequence"
)

// Name identifies a built-in key.
type Name int

// Built-in keys
const (
	NameNone Name = iota
	NameNext
	NamePrevious
	NamePrint
	NameRotateCW
	NameRotateCCW
)

// Key is a toolkit-independent keystroke code: either a printable rune
// (candidate for a bound action) or a built-in name.
type Key struct {
	Rune rune
	Name Name
}

// KeyRune wraps a printable keystroke.
func KeyRune(r rune) Key {
	return Key{Rune: r}
}

// KeyNamed wraps a built-in keystroke.
func KeyNamed(n Name) Key {
	return Key{Name: n}
}

// Surface is the narrow interface onto the presentation layer. Reload loads
// the image bytes for the current path and redraws; Rotate turns the
// already-loaded in-memory image a quarter turn and redraws, without touching
// the file or reloading it.
type Surface interface {
	Reload()
	Rotate(clockwise bool)
}

// Dispatcher owns keystroke handling for one session. All calls arrive on the
// single event thread; actions run synchronously and block further input
// until they return.
type Dispatcher struct {
	seq      *sequence.Sequencer
	registry *action.Registry
	surface  Surface
	out      io.Writer
}

// New creates a Dispatcher. out receives the F1 path printing (stdout in
// production).
func New(seq *sequence.Sequencer, registry *action.Registry, surface Surface, out io.Writer) *Dispatcher {
	return &Dispatcher{seq: seq, registry: registry, surface: surface, out: out}
}

// Handle processes one keystroke. Built-in keys win over bound keys; unbound
// keys are no-ops. Action errors are logged and never propagate — the session
// keeps running and the user can retry or navigate away.
func (d *Dispatcher) Handle(k Key) {
	switch k.Name {
	case NameNext:
		if d.seq.Advance() {
			d.surface.Reload()
		}
		return
	case NamePrevious:
		if d.seq.Retreat() {
			d.surface.Reload()
		}
		return
	case NamePrint:
		fmt.Fprintln(d.out, d.seq.Current())
		return
	case NameRotateCW:
		d.surface.Rotate(true)
		return
	case NameRotateCCW:
		d.surface.Rotate(false)
		return
	}

	if k.Rune == 0 {
		return
	}
	a, ok := d.registry.Lookup(k.Rune)
	if !ok {
		return
	}
	path := d.seq.Current()
	if err := a.Invoke(path); err != nil {
		log.LogWithError(err).With(log.F("key", string(k.Rune))).Error("action failed")
	}
}

// Current exposes the current path for the presentation layer.
func (d *Dispatcher) Current() string {
	return d.seq.Current()
}

// Position returns the 1-based cursor position and the sequence length, for
// window titles and status lines.
func (d *Dispatcher) Position() (int, int) {
	return d.seq.Position() + 1, d.seq.Len()
}
