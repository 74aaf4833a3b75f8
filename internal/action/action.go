// Package action implements the keystroke-bound operations: running a shell
// command template on the current file, moving it to a fixed directory, or
// moving it into a subdirectory named after the file's parent.
package action

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wcmckee/SortPictures/internal/errors"
	"github.com/wcmckee/SortPictures/internal/log"
)

// Kind tags the action variant.
type Kind int

// Action kinds
const (
	KindRunCommand Kind = iota
	KindMoveFixed
	KindMoveToParentSubdir
)

// Action is one keystroke-bound operation. An Action owns its own mutable
// state (the directory-existence caches); it never touches the file list or
// the cursor. Invoke errors are runtime errors: the caller logs them and the
// session continues.
type Action struct {
	kind     Kind
	template string // KindRunCommand
	dir      string // KindMoveFixed target, KindMoveToParentSubdir base

	// KindMoveFixed: target directory still needs to be created on first use
	createPending bool
	// KindMoveToParentSubdir: subdirectories already known to exist
	known map[string]bool
}

// Kind returns the action variant.
func (a *Action) Kind() Kind {
	return a.kind
}

// NewRunCommand builds a shell-command action. The current path is
// substituted into the first %s placeholder at invocation time; a template
// without a placeholder has the path appended as a final argument.
func NewRunCommand(template string) *Action {
	return &Action{kind: KindRunCommand, template: template}
}

// NewMoveFixed builds a move-to-directory action. The existence check runs
// here, at startup: a missing directory is a fatal configuration error unless
// createIfMissing is set, in which case creation is deferred to the first
// invocation and cached afterwards. option names the flag for error messages.
func NewMoveFixed(dir string, createIfMissing bool, option string) (*Action, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return &Action{kind: KindMoveFixed, dir: dir}, nil
	case err == nil:
		return nil, errors.NewConfigError("not a directory: "+dir, option, errors.NotADirectory, nil)
	case os.IsNotExist(err) && createIfMissing:
		return &Action{kind: KindMoveFixed, dir: dir, createPending: true}, nil
	case os.IsNotExist(err):
		return nil, errors.NewConfigError("no such directory: "+dir, option, errors.NotADirectory, nil)
	default:
		return nil, errors.NewConfigError("cannot access directory: "+dir, option, errors.NotADirectory, err)
	}
}

// NewMoveToParentSubdir builds a sort-into-subdirectory action. base must
// already exist; the per-parent subdirectories are created as they are first
// needed.
func NewMoveToParentSubdir(base string, option string) (*Action, error) {
	info, err := os.Stat(base)
	switch {
	case err == nil && info.IsDir():
		return &Action{kind: KindMoveToParentSubdir, dir: base, known: make(map[string]bool)}, nil
	case err == nil:
		return nil, errors.NewConfigError("not a directory: "+base, option, errors.NotADirectory, nil)
	case os.IsNotExist(err):
		return nil, errors.NewConfigError("no such directory: "+base, option, errors.NotADirectory, nil)
	default:
		return nil, errors.NewConfigError("cannot access directory: "+base, option, errors.NotADirectory, err)
	}
}

// Invoke applies the action to path.
func (a *Action) Invoke(path string) error {
	switch a.kind {
	case KindRunCommand:
		return a.runCommand(path)
	case KindMoveFixed:
		return a.moveFixed(path)
	case KindMoveToParentSubdir:
		return a.moveToParentSubdir(path)
	default:
		return errors.Newf("unknown action kind %d", a.kind)
	}
}

// Describe returns a short human-readable summary for help output.
func (a *Action) Describe() string {
	switch a.kind {
	case KindRunCommand:
		return "run: " + a.template
	case KindMoveFixed:
		if a.createPending {
			return "move to " + a.dir + " (created on first use)"
		}
		return "move to " + a.dir
	case KindMoveToParentSubdir:
		return "sort into " + filepath.Join(a.dir, "<parent>")
	default:
		return "unknown"
	}
}

// CommandLine substitutes path into the first %s placeholder of template, or
// appends it as an extra argument when the template has none.
func CommandLine(template, path string) string {
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", path, 1)
	}
	return template + " " + path
}

func (a *Action) runCommand(path string) error {
	line := CommandLine(a.template, path)

	// Echo the substituted command line; its output is inherited, not captured.
	fmt.Println(line)

	cmd := exec.Command("/bin/sh", "-c", line)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			// The command ran; its exit status is none of our business.
			log.With(log.F("command", line)).Debugf("command exited with error: %v", err)
			return nil
		}
		return errors.NewActionError("command failed to start", path, errors.CommandFailed, err)
	}
	return nil
}

func (a *Action) moveFixed(path string) error {
	if a.createPending {
		if err := os.Mkdir(a.dir, 0755); err != nil && !os.IsExist(err) {
			return errors.NewActionError("cannot create directory "+a.dir, path, errors.MoveFailed, err)
		}
		a.createPending = false
	}
	return rename(path, filepath.Join(a.dir, filepath.Base(path)))
}

func (a *Action) moveToParentSubdir(path string) error {
	parent := filepath.Base(filepath.Dir(path))
	target := filepath.Join(a.dir, parent)

	if !a.known[target] {
		info, err := os.Stat(target)
		switch {
		case err == nil && !info.IsDir():
			return errors.NewActionError("not a directory: "+target, path, errors.NotADirectory, nil)
		case err == nil:
			// Already there, remember it
		case os.IsNotExist(err):
			if mkErr := os.Mkdir(target, 0755); mkErr != nil {
				return errors.NewActionError("cannot create directory "+target, path, errors.MoveFailed, mkErr)
			}
		default:
			return errors.NewActionError("cannot access directory "+target, path, errors.MoveFailed, err)
		}
		a.known[target] = true
	}

	return rename(path, filepath.Join(target, filepath.Base(path)))
}

// rename moves a file, keeping platform rename semantics for collisions.
func rename(src, dest string) error {
	log.With(log.F("from", src), log.F("to", dest)).Debug("moving file")
	if err := os.Rename(src, dest); err != nil {
		return errors.NewActionError("move failed", src, errors.MoveFailed, err)
	}
	log.Infof("moved %s -> %s", src, dest)
	return nil
}
