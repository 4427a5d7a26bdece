package actionmap

import (
	"fmt"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/input/key"
)

// noValue is the type of NoValue.
type noValue struct{}

func (noValue) String() string { return "<no value>" }

// NoValue is the target value meaning "invoke actions directly": the map
// is used as is and no argument is bound.
var NoValue any = noValue{}

// IsNoValue reports whether v is the NoValue sentinel.
func IsNoValue(v any) bool {
	_, ok := v.(noValue)
	return ok
}

// Binding is a trigger with its entry.
type Binding struct {
	Trigger key.Event
	Entry   Entry
}

// Map is an ordered table of trigger bindings.
type Map struct {
	name    string
	order   []key.Event
	entries map[key.Event]Entry
	parent  *Map
}

// New creates an empty map. The name is used for display and for
// registration; it may be empty for anonymous submaps.
func New(name string) *Map {
	return &Map{
		name:    name,
		entries: make(map[key.Event]Entry),
	}
}

// Name returns the map name.
func (m *Map) Name() string { return m.name }

// Len returns the number of local bindings.
func (m *Map) Len() int { return len(m.order) }

// Parent returns the parent map, or nil.
func (m *Map) Parent() *Map { return m.parent }

// SetParent sets the map consulted for triggers this map does not bind.
// Setting it again replaces the previous parent.
func (m *Map) SetParent(parent *Map) { m.parent = parent }

// Define binds trigger to entry, replacing any existing local binding.
// A new trigger is appended to the display order; a replaced trigger
// keeps its position. Define panics on an invalid entry.
func (m *Map) Define(trigger key.Event, e Entry) {
	if !e.Valid() {
		panic(fmt.Sprintf("actionmap: define %s in %q: invalid %s entry", trigger, m.name, e.kind))
	}
	if _, exists := m.entries[trigger]; !exists {
		m.order = append(m.order, trigger)
	}
	m.entries[trigger] = e
}

// Lookup returns the entry for trigger, checking the parent chain when the
// map itself has no binding.
func (m *Map) Lookup(trigger key.Event) (Entry, bool) {
	seen := make(map[*Map]struct{})
	for cur := m; cur != nil; cur = cur.parent {
		if _, loop := seen[cur]; loop {
			break
		}
		seen[cur] = struct{}{}
		if e, ok := cur.entries[trigger]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// LookupLocal returns the entry bound in this map only.
func (m *Map) LookupLocal(trigger key.Event) (Entry, bool) {
	e, ok := m.entries[trigger]
	return e, ok
}

// Set binds a key sequence to entry, creating anonymous submaps for each
// prefix that is not yet bound. It fails with ErrNotPrefix when a prefix
// is already bound to a leaf or to a named map.
func (m *Map) Set(seq *key.Sequence, e Entry) error {
	if seq.Len() == 0 {
		return fmt.Errorf("%w: empty key sequence", ErrInvalidEntry)
	}
	if !e.Valid() {
		return fmt.Errorf("%w: %s at %s", ErrInvalidEntry, e.kind, seq)
	}

	cur := m
	for i, ev := range seq.Events[:seq.Len()-1] {
		existing, ok := cur.entries[ev]
		switch {
		case !ok:
			sub := New("")
			cur.Define(ev, Submap(sub))
			cur = sub
		case existing.kind == EntrySubmap:
			cur = existing.submap
		default:
			prefix := key.NewSequenceFrom(seq.Events[:i+1]...)
			return fmt.Errorf("%w: %s is bound to %s", ErrNotPrefix, prefix, existing)
		}
	}
	cur.Define(seq.Events[seq.Len()-1], e)
	return nil
}

// Bind binds the key sequence spec to inv and returns m. It panics on an
// unparsable spec or a conflicting prefix; use it for static tables.
func (m *Map) Bind(spec string, inv action.Invoker) *Map {
	if inv == nil {
		panic(fmt.Sprintf("actionmap: bind %q in %q: nil invoker", spec, m.name))
	}
	return m.mustSet(spec, Leaf(inv))
}

// BindMap binds the key sequence spec to the submap sub and returns m.
func (m *Map) BindMap(spec string, sub *Map) *Map {
	return m.mustSet(spec, Submap(sub))
}

// BindNamed binds the key sequence spec to the registered map called name
// and returns m.
func (m *Map) BindNamed(spec, name string) *Map {
	return m.mustSet(spec, Named(name))
}

func (m *Map) mustSet(spec string, e Entry) *Map {
	if err := m.Set(key.MustParseSequence(spec), e); err != nil {
		panic(fmt.Sprintf("actionmap: bind %q in %q: %v", spec, m.name, err))
	}
	return m
}

// LookupSequence follows seq through nested maps, resolving named entries
// through reg (which may be nil when the map has none). Each step uses
// Lookup, so parents apply at every level. An unbound sequence yields the
// zero Entry and a nil error.
func (m *Map) LookupSequence(seq *key.Sequence, reg *Registry) (Entry, error) {
	if seq.Len() == 0 {
		return Entry{}, fmt.Errorf("%w: empty key sequence", ErrInvalidEntry)
	}

	cur := m
	var e Entry
	for i, ev := range seq.Events {
		var ok bool
		e, ok = cur.Lookup(ev)
		if !ok {
			return Entry{}, nil
		}
		if i == seq.Len()-1 {
			break
		}
		if !e.IsPrefix() {
			return Entry{}, fmt.Errorf("%w: %s", ErrNotPrefix, key.NewSequenceFrom(seq.Events[:i+1]...))
		}
		next, err := reg.Resolve(e)
		if err != nil {
			return Entry{}, err
		}
		cur = next
	}
	return e, nil
}

// Entries returns the local bindings in display order.
func (m *Map) Entries() []Binding {
	out := make([]Binding, 0, len(m.order))
	for _, t := range m.order {
		out = append(out, Binding{Trigger: t, Entry: m.entries[t]})
	}
	return out
}

// Effective returns the flat table the map presents: its own bindings in
// order followed by each ancestor's bindings whose trigger is not already
// present. A cyclic parent chain is cut at the first repeat.
func (m *Map) Effective() []Binding {
	out := make([]Binding, 0, len(m.order))
	seen := make(map[key.Event]struct{})
	visited := make(map[*Map]struct{})

	for cur := m; cur != nil; cur = cur.parent {
		if _, loop := visited[cur]; loop {
			break
		}
		visited[cur] = struct{}{}
		for _, t := range cur.order {
			if _, shadowed := seen[t]; shadowed {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, Binding{Trigger: t, Entry: cur.entries[t]})
		}
	}
	return out
}

func (m *Map) String() string {
	if m.name == "" {
		return fmt.Sprintf("actionmap(%d bindings)", len(m.order))
	}
	return fmt.Sprintf("actionmap %q (%d bindings)", m.name, len(m.order))
}
