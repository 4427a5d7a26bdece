package action

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/atpoint/internal/suggest"
)

// Registry holds every action by name together with the sticky marker
// set.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]*Action
	sticky  map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]*Action),
		sticky:  make(map[string]struct{}),
	}
}

// Register adds actions to the registry. Names must be unique.
func (r *Registry) Register(actions ...*Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range actions {
		if a == nil {
			return fmt.Errorf("%w: nil action", ErrInvalidAction)
		}
		if _, exists := r.actions[a.name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicate, a.name)
		}
		r.actions[a.name] = a
	}
	return nil
}

// Replace registers a, overwriting any action with the same name.
func (r *Registry) Replace(a *Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[a.name] = a
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (*Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	return a, ok
}

// Lookup is like Get but returns ErrUnknownAction with a suggestion when
// the name is not registered.
func (r *Registry) Lookup(name string) (*Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.actions[name]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q%s", ErrUnknownAction, name, suggest.Hint(name, r.namesLocked()))
}

// MustGet returns the named action and panics if it is not registered.
func (r *Registry) MustGet(name string) *Action {
	a, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return a
}

// MarkSticky adds names to the sticky set. Every name must be registered.
func (r *Registry) MarkSticky(names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if _, ok := r.actions[name]; !ok {
			return fmt.Errorf("%w: cannot mark %q sticky%s",
				ErrUnknownAction, name, suggest.Hint(name, r.namesLocked()))
		}
	}
	for _, name := range names {
		r.sticky[name] = struct{}{}
	}
	return nil
}

// IsSticky reports whether the named action keeps the menu open.
func (r *Registry) IsSticky(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sticky[name]
	return ok
}

// Sticky returns the sorted names in the sticky set.
func (r *Registry) Sticky() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sticky))
	for name := range r.sticky {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns all registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}
