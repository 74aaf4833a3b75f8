// Package watch feeds files created during a session into the sequence.
// A Watcher only observes; the caller drains Paths() and appends.
package watch

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/wcmckee/SortPictures/internal/log"
)

// Watcher monitors directories for newly created files using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	filter    glob.Glob
	paths     chan string
	done      chan struct{}
	running   bool
}

// New creates a directory watcher. filter, when non-nil, is the same
// base-name glob the expansion used; files that do not match are ignored.
func New(filter glob.Glob) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		filter:    filter,
		paths:     make(chan string, 64),
		done:      make(chan struct{}),
	}, nil
}

// AddDirectory adds a directory to watch. fsnotify deduplicates repeated
// adds itself.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		// Plain file items have no directory to watch
		return nil
	}
	return w.fsWatcher.Add(dir)
}

// Paths returns the channel of newly created file paths.
func (w *Watcher) Paths() <-chan string {
	return w.paths
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	if w.running {
		return
	}
	w.running = true

	go func() {
		// Closing paths lets consumers ranging over Paths() terminate.
		defer close(w.paths)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) {
					w.handleCreate(event.Name)
				}
			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.With(log.F("error", err)).Warn("fsnotify watcher error")
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) handleCreate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		// Gone already, or a new directory; either way nothing to show
		return
	}
	if w.filter != nil && !w.filter.Match(filepath.Base(path)) {
		return
	}
	select {
	case w.paths <- path:
		log.With(log.F("path", path)).Debug("new file queued")
	default:
		log.With(log.F("path", path)).Warn("watch queue full, dropping new file")
	}
}

// Stop shuts the watcher down and closes the underlying fsnotify watcher.
func (w *Watcher) Stop() {
	if !w.running {
		return
	}
	w.running = false
	close(w.done)
	if err := w.fsWatcher.Close(); err != nil {
		log.With(log.F("error", err)).Warn("error closing fsnotify watcher")
	}
}
