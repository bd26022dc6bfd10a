package capability

import (
	"fmt"
	"slices"
)

// Entry is a named implementation reference.
type Entry[T any] struct {
	Name  string
	Value T
}

// Registry is an ordered set of named implementations with an optional
// enabled subset.
type Registry[T any] struct {
	kind    string
	entries []Entry[T]
	index   map[string]int

	// enabled is nil while unset, meaning every entry is active.
	enabled []string
}

// New creates a registry seeded with entries, in order. A later entry with
// the same name as an earlier one overwrites its value.
func New[T any](kind string, entries ...Entry[T]) *Registry[T] {
	r := &Registry[T]{
		kind:  kind,
		index: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		r.Add(e.Name, e.Value)
	}
	return r
}

// Add inserts value under name. Overwriting an existing name keeps its
// position in the registry.
func (r *Registry[T]) Add(name string, value T) {
	if i, ok := r.index[name]; ok {
		r.entries[i].Value = value
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry[T]{Name: name, Value: value})
}

// Get returns the value registered under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	i, ok := r.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return r.entries[i].Value, true
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Names returns every registered name in registry order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Validate returns an *UnknownNamesError wrapping ErrInvalidArgument when
// any of names is not registered. Every unknown name is reported once.
func (r *Registry[T]) Validate(names []string) error {
	var unknown []string
	for _, name := range names {
		if !r.Has(name) && !slices.Contains(unknown, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return &UnknownNamesError{Kind: r.kind, Names: unknown, Err: ErrInvalidArgument}
	}
	return nil
}

// Enable replaces the enabled set with names. Nothing changes when any name
// is unknown.
func (r *Registry[T]) Enable(names ...string) error {
	if err := r.Validate(names); err != nil {
		return err
	}
	enabled := make([]string, len(names))
	copy(enabled, names)
	r.enabled = enabled
	return nil
}

// Enabled returns a copy of the enabled set. ok is false while the set is
// unset and every entry is active.
func (r *Registry[T]) Enabled() (names []string, ok bool) {
	if r.enabled == nil {
		return nil, false
	}
	return slices.Clone(r.enabled), true
}

// Active returns the values of the active entries in registry order.
func (r *Registry[T]) Active() []T {
	active := r.activeEntries()
	values := make([]T, len(active))
	for i, e := range active {
		values[i] = e.Value
	}
	return values
}

// ActiveNames returns the names of the active entries in registry order.
func (r *Registry[T]) ActiveNames() []string {
	active := r.activeEntries()
	names := make([]string, len(active))
	for i, e := range active {
		names[i] = e.Name
	}
	return names
}

func (r *Registry[T]) activeEntries() []Entry[T] {
	if r.enabled == nil {
		return slices.Clone(r.entries)
	}
	active := make([]Entry[T], 0, len(r.enabled))
	for _, e := range r.entries {
		if slices.Contains(r.enabled, e.Name) {
			active = append(active, e)
		}
	}
	return active
}

// Selector is a registry with exactly one active entry.
type Selector[T any] struct {
	reg      *Registry[T]
	selected string
}

// NewSelector creates a selector over entries with def selected. It panics
// when def is not among entries, since that is a programming error.
func NewSelector[T any](kind, def string, entries ...Entry[T]) *Selector[T] {
	reg := New(kind, entries...)
	if !reg.Has(def) {
		panic(fmt.Sprintf("capability: default %s %q is not registered", kind, def))
	}
	return &Selector[T]{reg: reg, selected: def}
}

// Select makes name the active entry. An unknown name yields an
// *UnknownNamesError wrapping ErrKeyNotFound and leaves the selection as is.
func (s *Selector[T]) Select(name string) error {
	if !s.reg.Has(name) {
		return &UnknownNamesError{Kind: s.reg.kind, Names: []string{name}, Err: ErrKeyNotFound}
	}
	s.selected = name
	return nil
}

// Selected returns the active name and its value.
func (s *Selector[T]) Selected() (string, T) {
	v, _ := s.reg.Get(s.selected)
	return s.selected, v
}

// Names returns every selectable name in registry order.
func (s *Selector[T]) Names() []string {
	return s.reg.Names()
}
