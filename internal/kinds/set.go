package kinds

import (
	"fmt"
	"slices"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/suggest"
	"github.com/dshills/atpoint/internal/target"
)

// Set is the built-in kinds wired into fresh registries.
type Set struct {
	Actions   *action.Registry
	Maps      *actionmap.Registry
	Detectors *target.Registry

	// arity is the argument count actions in each map receive.
	arity map[string]int
}

// Actions returns the built-in actions.
func Actions() []*action.Action {
	var out []*action.Action
	out = append(out, regionActions()...)
	out = append(out, tableActions()...)
	out = append(out, headingActions()...)
	out = append(out, timestampActions()...)
	out = append(out, numberActions()...)
	out = append(out, thingActions()...)
	out = append(out, symbolActions()...)
	return out
}

// NewSet registers the built-in actions, sticky marks, maps and detectors
// in default precedence order.
func NewSet() (*Set, error) {
	s := &Set{
		Actions: action.NewRegistry(),
		Maps:    actionmap.NewRegistry(),
		arity:   make(map[string]int),
	}
	if err := s.Actions.Register(Actions()...); err != nil {
		return nil, fmt.Errorf("kinds: %w", err)
	}
	if err := s.Actions.MarkSticky(stickyActions...); err != nil {
		return nil, fmt.Errorf("kinds: %w", err)
	}

	for _, name := range []string{MapThing, MapXref} {
		m := actionmap.New(name)
		if err := s.fill(m, sharedTables[name]); err != nil {
			return nil, err
		}
		if err := s.Maps.Register(m); err != nil {
			return nil, fmt.Errorf("kinds: %w", err)
		}
		s.arity[name] = 1
	}

	var detectors []target.Detector
	for _, tbl := range kindTables {
		m := actionmap.New(tbl.kind.String())
		if tbl.parent != "" {
			m.SetParent(s.Maps.MustGet(tbl.parent))
		}
		if err := s.fill(m, tbl.keys); err != nil {
			return nil, err
		}
		if err := s.Maps.Register(m); err != nil {
			return nil, fmt.Errorf("kinds: %w", err)
		}
		s.arity[m.Name()] = 1
		if noValueKinds[tbl.kind] {
			s.arity[m.Name()] = 0
		}

		d, err := NewDetector(tbl.kind, m)
		if err != nil {
			return nil, err
		}
		detectors = append(detectors, d)
	}

	reg, err := target.NewRegistry(detectors...)
	if err != nil {
		return nil, fmt.Errorf("kinds: %w", err)
	}
	s.Detectors = reg
	return s, nil
}

func (s *Set) fill(m *actionmap.Map, keys []binding) error {
	for _, b := range keys {
		seq, err := key.ParseSequence(b.spec)
		if err != nil {
			return fmt.Errorf("kinds: map %s: %w", m.Name(), err)
		}
		entry := actionmap.Named(b.named)
		if b.named == "" {
			a, err := s.Actions.Lookup(b.action)
			if err != nil {
				return fmt.Errorf("kinds: map %s: %w", m.Name(), err)
			}
			entry = actionmap.Leaf(a)
		}
		if err := m.Set(seq, entry); err != nil {
			return fmt.Errorf("kinds: map %s: %w", m.Name(), err)
		}
	}
	return nil
}

// MapNames returns the names accepted by Bind, sorted.
func (s *Set) MapNames() []string {
	names := make([]string, 0, len(s.arity))
	for name := range s.arity {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Map returns the built-in map for kind.
func (s *Set) Map(kind target.Kind) (*actionmap.Map, bool) {
	return s.Maps.Get(kind.String())
}

// Bind binds the key sequence spec in the map called mapName to the
// registered action actionName. The action must take the argument count
// the map's kind supplies.
func (s *Set) Bind(mapName, spec, actionName string) error {
	m, ok := s.Maps.Get(mapName)
	want, known := s.arity[mapName]
	if !ok || !known {
		return fmt.Errorf("%w: %q%s", ErrUnknownMap, mapName, suggest.Hint(mapName, s.MapNames()))
	}

	a, err := s.Actions.Lookup(actionName)
	if err != nil {
		return fmt.Errorf("kinds: %w", err)
	}
	if a.Arity() != want {
		return fmt.Errorf("%w: %s takes %d arguments, map %s supplies %d",
			ErrArityMismatch, actionName, a.Arity(), mapName, want)
	}

	seq, err := key.ParseSequence(spec)
	if err != nil {
		return fmt.Errorf("kinds: %w", err)
	}
	if err := m.Set(seq, actionmap.Leaf(a)); err != nil {
		return fmt.Errorf("kinds: %w", err)
	}
	return nil
}
