package sequence

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/wcmckee/SortPictures/internal/errors"
)

// RecursionMarker is the trailing marker that requests recursive expansion of
// a directory item, e.g. "photos/...". It is stripped before traversal.
const RecursionMarker = "..."

// Expand turns the raw item list into a flat ordered list of file paths.
// Plain files pass through verbatim. A directory contributes its direct
// non-directory children in os.ReadDir order; with the recursion marker it is
// walked depth-first to any depth, a directory's files emitted before its
// subdirectories. No extension or hidden-file filtering happens here — every
// path is accepted, and whether it is an image is the loader's problem.
//
// filter, when non-nil, is matched against base names only; paths that do not
// match are skipped. A missing or unreadable item is a fatal error: the whole
// expansion aborts rather than collecting a partial list.
func Expand(items []string, filter glob.Glob) ([]string, error) {
	var files []string

	for _, item := range items {
		path := item
		recursive := false
		if len(item) > len(RecursionMarker) && strings.HasSuffix(item, RecursionMarker) {
			path = filepath.Clean(strings.TrimSuffix(item, RecursionMarker))
			recursive = true
		}

		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewFileError("no such file or directory", item, errors.FileNotFound, err)
			}
			return nil, errors.NewFileError("cannot access item", item, errors.FileAccessDenied, err)
		}

		if !info.IsDir() {
			files = appendMatching(files, path, filter)
			continue
		}

		if recursive {
			files, err = expandRecursive(files, path, filter)
		} else {
			files, err = expandDirect(files, path, filter)
		}
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func appendMatching(files []string, path string, filter glob.Glob) []string {
	if filter != nil && !filter.Match(filepath.Base(path)) {
		return files
	}
	return append(files, path)
}

// expandDirect appends the direct non-directory children of dir.
func expandDirect(files []string, dir string, filter glob.Glob) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot read directory", dir, errors.FileAccessDenied, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = appendMatching(files, filepath.Join(dir, entry.Name()), filter)
	}
	return files, nil
}

// expandRecursive walks dir depth-first, emitting files before descending.
func expandRecursive(files []string, dir string, filter glob.Glob) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot read directory", dir, errors.FileAccessDenied, err)
	}

	var subdirs []string
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, child)
			continue
		}
		files = appendMatching(files, child, filter)
	}

	for _, sub := range subdirs {
		files, err = expandRecursive(files, sub, filter)
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// CompileFilter compiles a base-name glob pattern. An empty pattern means no
// filtering and yields a nil Glob.
func CompileFilter(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("invalid filter pattern", "--filter", errors.InvalidFilter, err)
	}
	return g, nil
}
