package actionmap

import (
	"fmt"

	"github.com/dshills/atpoint/internal/action"
)

// EntryKind identifies the variant held by an Entry.
type EntryKind uint8

// Entry kinds.
const (
	// EntryNone is the zero entry.
	EntryNone EntryKind = iota

	// EntryLeaf holds an invoker.
	EntryLeaf

	// EntrySubmap holds a nested map.
	EntrySubmap

	// EntryNamed holds the name of a registered map.
	EntryNamed
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryLeaf:
		return "leaf"
	case EntrySubmap:
		return "submap"
	case EntryNamed:
		return "named"
	default:
		return "none"
	}
}

// Entry is the value bound to a trigger.
type Entry struct {
	kind   EntryKind
	leaf   action.Invoker
	submap *Map
	name   string
}

// Leaf returns an entry that invokes inv.
func Leaf(inv action.Invoker) Entry {
	return Entry{kind: EntryLeaf, leaf: inv}
}

// Submap returns an entry that descends into m.
func Submap(m *Map) Entry {
	return Entry{kind: EntrySubmap, submap: m}
}

// Named returns an entry that descends into the registered map called
// name.
func Named(name string) Entry {
	return Entry{kind: EntryNamed, name: name}
}

// Kind returns the entry variant.
func (e Entry) Kind() EntryKind { return e.kind }

// Invoker returns the leaf invoker, or nil.
func (e Entry) Invoker() action.Invoker { return e.leaf }

// Map returns the direct submap, or nil.
func (e Entry) Map() *Map { return e.submap }

// Name returns the referenced map name for named entries.
func (e Entry) Name() string { return e.name }

// IsPrefix reports whether the entry leads to another map.
func (e Entry) IsPrefix() bool {
	return e.kind == EntrySubmap || e.kind == EntryNamed
}

// Valid reports whether the entry carries content for its kind.
func (e Entry) Valid() bool {
	switch e.kind {
	case EntryLeaf:
		return e.leaf != nil
	case EntrySubmap:
		return e.submap != nil
	case EntryNamed:
		return e.name != ""
	}
	return false
}

// Label returns a short display string: the action name for leaves and the
// map name (or "+prefix") for prefixes.
func (e Entry) Label() string {
	switch e.kind {
	case EntryLeaf:
		return e.leaf.Name()
	case EntrySubmap:
		if e.submap.name != "" {
			return "+" + e.submap.name
		}
		return "+prefix"
	case EntryNamed:
		return "+" + e.name
	}
	return ""
}

func (e Entry) String() string {
	return fmt.Sprintf("%s(%s)", e.kind, e.Label())
}
