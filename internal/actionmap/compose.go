package actionmap

import (
	"fmt"

	"github.com/dshills/atpoint/internal/input/key"
)

// ComposedName is the name given to maps built by Compose.
const ComposedName = "composed"

// Compose merges maps into one, earlier maps taking precedence.
//
// For each trigger the first map binding it wins. When that first binding
// is a prefix and later maps also bind a prefix at the same trigger, the
// maps behind those prefixes are composed recursively in the same order.
// A later leaf never replaces an earlier prefix, and the reverse. Display
// order is first appearance. Each input's effective bindings are used, so
// parents participate. Named entries are resolved through reg. Inputs are
// not modified; with no inputs the result is empty.
func Compose(reg *Registry, maps ...*Map) (*Map, error) {
	for _, m := range maps {
		if err := checkAcyclic(m, reg); err != nil {
			return nil, err
		}
	}
	return compose(reg, maps)
}

type slot struct {
	first Entry
	subs  []*Map
}

func compose(reg *Registry, maps []*Map) (*Map, error) {
	var order []key.Event
	slots := make(map[key.Event]*slot)

	for _, m := range maps {
		for _, b := range m.Effective() {
			s, seen := slots[b.Trigger]
			if !seen {
				s = &slot{first: b.Entry}
				slots[b.Trigger] = s
				order = append(order, b.Trigger)
			}
			if !s.first.IsPrefix() || !b.Entry.IsPrefix() {
				continue
			}
			sub, err := reg.Resolve(b.Entry)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", b.Trigger, err)
			}
			s.subs = append(s.subs, sub)
		}
	}

	out := New(ComposedName)
	for _, t := range order {
		s := slots[t]
		if len(s.subs) == 0 {
			out.Define(t, s.first)
			continue
		}
		sub, err := compose(reg, s.subs)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", t, err)
		}
		sub.name = s.subs[0].name
		out.Define(t, Submap(sub))
	}
	return out, nil
}
