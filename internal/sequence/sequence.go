// Package sequence owns the ordered list of files a session steps through:
// expanding CLI items into the list, applying the one-time sort policy, and
// moving the cursor.
package sequence

import (
	"fmt"
	"sync"

	"github.com/gobwas/glob"

	"github.com/wcmckee/SortPictures/internal/errors"
)

// Sequencer holds the ordered file list and the cursor. The list is built
// once at startup and only ever grows (watch mode appends); entries are never
// removed, even after a bound action moves the file they point at. The cursor
// moves only on the event thread; the mutex exists because the watcher
// goroutine appends while a session runs.
type Sequencer struct {
	mu     sync.Mutex
	files  []string
	cursor int
}

// New creates a Sequencer over an already-expanded file list. An empty list
// is a fatal configuration error.
func New(files []string) (*Sequencer, error) {
	if len(files) == 0 {
		return nil, errors.NewConfigError("no files to display", "item", errors.EmptyInput, nil)
	}
	return &Sequencer{files: files}, nil
}

// Build expands items and constructs a Sequencer in one step.
func Build(items []string, filter glob.Glob) (*Sequencer, error) {
	files, err := Expand(items, filter)
	if err != nil {
		return nil, err
	}
	return New(files)
}

// ApplySort reorders the file list in place. Call before SetStart: the start
// offset refers to a position in the post-sort sequence.
func (s *Sequencer) ApplySort(policy Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch policy {
	case ByName:
		sortByName(s.files)
	case ByModTime:
		sortByModTime(s.files)
	case Shuffle:
		shuffle(s.files)
	}
}

// SetStart positions the cursor at the 1-based index n.
func (s *Sequencer) SetStart(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.files) {
		msg := fmt.Sprintf("start position %d out of range 1-%d", n, len(s.files))
		return errors.NewConfigError(msg, "--start", errors.OutOfRangeStart, nil)
	}
	s.cursor = n - 1
	return nil
}

// Current returns the path at the cursor.
func (s *Sequencer) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[s.cursor]
}

// Position returns the 0-based cursor index.
func (s *Sequencer) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Len returns the number of entries.
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// Files returns a copy of the file list.
func (s *Sequencer) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Advance moves the cursor forward and reports whether it moved. At the last
// entry it is a no-op returning false, so callers can skip redundant redraws.
func (s *Sequencer) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor+1 >= len(s.files) {
		return false
	}
	s.cursor++
	return true
}

// Retreat moves the cursor backward and reports whether it moved.
func (s *Sequencer) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// Append adds paths to the end of the list. Watch mode calls this from the
// watcher goroutine; the new entries become reachable on the next Advance.
func (s *Sequencer) Append(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, paths...)
}
