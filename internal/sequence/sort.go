package sequence

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcmckee/SortPictures/internal/errors"
)

// Policy is the ordering transform applied once to the file list before
// display begins.
type Policy int

// Sort policies
const (
	None Policy = iota
	ByName
	ByModTime
	Shuffle
)

// ParsePolicy resolves a --sort value. Accepted names are none, name, mod and
// random; the empty string means none.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "none":
		return None, nil
	case "name":
		return ByName, nil
	case "mod":
		return ByModTime, nil
	case "random":
		return Shuffle, nil
	default:
		return None, errors.NewConfigError("unknown sort policy: "+name, "--sort", errors.InvalidSort, nil)
	}
}

// String returns the CLI name of the policy.
func (p Policy) String() string {
	switch p {
	case ByName:
		return "name"
	case ByModTime:
		return "mod"
	case Shuffle:
		return "random"
	default:
		return "none"
	}
}

func sortByName(files []string) {
	// Base names only; two files in different directories sharing a name
	// keep their relative order.
	sort.SliceStable(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})
}

func sortByModTime(files []string) {
	// One stat per path per sort pass. Paths that fail to stat sort with a
	// zero timestamp rather than aborting; the loader surfaces the problem
	// when the slot is displayed.
	cache := make(map[string]time.Time, len(files))
	modTime := func(path string) time.Time {
		if t, ok := cache[path]; ok {
			return t
		}
		var t time.Time
		if info, err := os.Stat(path); err == nil {
			t = info.ModTime()
		}
		cache[path] = t
		return t
	}
	sort.SliceStable(files, func(i, j int) bool {
		return modTime(files[i]).Before(modTime(files[j]))
	})
}

func shuffle(files []string) {
	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})
}
