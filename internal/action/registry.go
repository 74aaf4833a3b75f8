package action

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wcmckee/SortPictures/internal/errors"
)

// Registry maps a single-character key to its bound action. Built once from
// the configuration and immutable afterwards. Binding the same key twice is
// rejected: a colliding --act/--move pair would otherwise silently discard
// one of the two, and that is almost always a typo.
type Registry struct {
	bindings map[rune]*Action
}

// builtinKeys are the printable keys browse mode claims for itself (next,
// previous, show path, help, quit). The browse model resolves them before the
// registry, so a binding on one of them would be accepted and then never
// fire; Bind rejects them up front instead. Must stay in sync with
// tui.DefaultKeyMap.
var builtinKeys = map[rune]bool{
	'j': true,
	'k': true,
	'p': true,
	'q': true,
	'?': true,
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[rune]*Action)}
}

// ParseSpec splits a binding specification of the form "<key>:<parameter>".
// The key must be exactly one character and the parameter non-empty; anything
// else is an InvalidBinding configuration error. option names the flag the
// spec came from.
func ParseSpec(spec, option string) (rune, string, error) {
	idx := strings.Index(spec, ":")
	if idx < 0 {
		return 0, "", errors.NewConfigError("missing ':' in binding "+spec, option, errors.InvalidBinding, nil)
	}
	key, param := spec[:idx], spec[idx+1:]
	if utf8.RuneCountInString(key) != 1 {
		return 0, "", errors.NewConfigError("key must be a single character in binding "+spec, option, errors.InvalidBinding, nil)
	}
	if param == "" {
		return 0, "", errors.NewConfigError("empty parameter in binding "+spec, option, errors.InvalidBinding, nil)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, param, nil
}

// Bind registers an action under key.
func (r *Registry) Bind(key rune, a *Action, option string) error {
	if builtinKeys[key] {
		return errors.NewConfigError("key '"+string(key)+"' is reserved for a built-in", option, errors.InvalidBinding, nil)
	}
	if _, dup := r.bindings[key]; dup {
		return errors.NewConfigError("key '"+string(key)+"' is already bound", option, errors.InvalidBinding, nil)
	}
	r.bindings[key] = a
	return nil
}

// BindCommand parses an --act spec and binds a shell-command action.
func (r *Registry) BindCommand(spec string) error {
	key, template, err := ParseSpec(spec, "--act")
	if err != nil {
		return err
	}
	return r.Bind(key, NewRunCommand(template), "--act")
}

// BindMove parses a --move/--movec spec and binds a fixed-directory move.
func (r *Registry) BindMove(spec string, createIfMissing bool) error {
	option := "--move"
	if createIfMissing {
		option = "--movec"
	}
	key, dir, err := ParseSpec(spec, option)
	if err != nil {
		return err
	}
	a, err := NewMoveFixed(dir, createIfMissing, option)
	if err != nil {
		return err
	}
	return r.Bind(key, a, option)
}

// BindMoveSub parses a --movesub spec and binds a parent-named-subdirectory
// move.
func (r *Registry) BindMoveSub(spec string) error {
	key, base, err := ParseSpec(spec, "--movesub")
	if err != nil {
		return err
	}
	a, err := NewMoveToParentSubdir(base, "--movesub")
	if err != nil {
		return err
	}
	return r.Bind(key, a, "--movesub")
}

// Lookup resolves a key to its action.
func (r *Registry) Lookup(key rune) (*Action, bool) {
	a, ok := r.bindings[key]
	return a, ok
}

// Len returns the number of bound keys.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// Keys returns the bound keys in a stable order.
func (r *Registry) Keys() []rune {
	keys := make([]rune, 0, len(r.bindings))
	for k := range r.bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
