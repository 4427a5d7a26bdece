package actionmap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/atpoint/internal/suggest"
)

// Registry holds named maps so that entries can refer to them by name.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Map)}
}

// Register adds maps under their names.
func (r *Registry) Register(maps ...*Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range maps {
		if m == nil || m.name == "" {
			return fmt.Errorf("%w: cannot register an unnamed map", ErrInvalidEntry)
		}
		if _, exists := r.maps[m.name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateMap, m.name)
		}
		r.maps[m.name] = m
	}
	return nil
}

// Get returns the map registered under name.
func (r *Registry) Get(name string) (*Map, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.maps[name]
	return m, ok
}

// MustGet returns the named map and panics if it is not registered.
func (r *Registry) MustGet(name string) *Map {
	m, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("actionmap: map %q not registered", name))
	}
	return m
}

// Names returns the registered map names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the map a prefix entry leads to. Named entries are
// looked up once; a nil registry resolves no names.
func (r *Registry) Resolve(e Entry) (*Map, error) {
	switch e.kind {
	case EntrySubmap:
		return e.submap, nil
	case EntryNamed:
		if m, ok := r.Get(e.name); ok {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %q%s", ErrUndefinedMap, e.name, suggest.Hint(e.name, r.Names()))
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotPrefix, e)
	}
}

// Validate checks every registered map for cycles and dangling named
// references and returns the first problem found, in name order.
func (r *Registry) Validate() error {
	for _, name := range r.Names() {
		m, _ := r.Get(name)
		if err := checkAcyclic(m, r); err != nil {
			return fmt.Errorf("map %q: %w", name, err)
		}
	}
	return nil
}

// checkAcyclic walks m and everything reachable from it through submap,
// named and parent links.
func checkAcyclic(m *Map, reg *Registry) error {
	return walk(m, reg, make(map[*Map]bool))
}

// walk is a depth-first search; onPath holds maps on the current path and
// is reset on return so shared submaps are not reported as cycles.
func walk(m *Map, reg *Registry, onPath map[*Map]bool) error {
	if onPath[m] {
		return fmt.Errorf("%w through %s", ErrCycle, m)
	}
	onPath[m] = true
	defer delete(onPath, m)

	if m.parent != nil {
		if err := walk(m.parent, reg, onPath); err != nil {
			return err
		}
	}
	for _, t := range m.order {
		e := m.entries[t]
		if !e.IsPrefix() {
			continue
		}
		sub, err := reg.Resolve(e)
		if err != nil {
			return fmt.Errorf("at %s: %w", t, err)
		}
		if err := walk(sub, reg, onPath); err != nil {
			return fmt.Errorf("at %s: %w", t, err)
		}
	}
	return nil
}
