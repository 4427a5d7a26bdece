package actionmap

import (
	"fmt"

	"github.com/dshills/atpoint/internal/action"
)

// Transform binds value into every action reachable from m.
//
// For NoValue it returns m itself. Otherwise it returns a new parentless
// map holding m's effective bindings, where each leaf invoker is replaced
// by action.Bind(invoker, value) and each prefix entry is replaced by a
// transformed copy of the map it leads to. Named entries are resolved
// through reg. The input maps are not modified.
func Transform(m *Map, value any, reg *Registry) (*Map, error) {
	if IsNoValue(value) {
		return m, nil
	}
	return transform(m, value, reg, make(map[*Map]bool))
}

func transform(m *Map, value any, reg *Registry, onPath map[*Map]bool) (*Map, error) {
	if onPath[m] {
		return nil, fmt.Errorf("%w through %s", ErrCycle, m)
	}
	onPath[m] = true
	defer delete(onPath, m)

	out := New(m.name)
	for _, b := range m.Effective() {
		switch b.Entry.kind {
		case EntryLeaf:
			out.Define(b.Trigger, Leaf(action.Bind(b.Entry.leaf, value)))
		case EntrySubmap, EntryNamed:
			sub, err := reg.Resolve(b.Entry)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", b.Trigger, err)
			}
			tsub, err := transform(sub, value, reg, onPath)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", b.Trigger, err)
			}
			out.Define(b.Trigger, Submap(tsub))
		}
	}
	return out, nil
}
