package actionmap

import (
	"context"
	"testing"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/input/key"
)

// call is one recorded invocation.
type call struct {
	Name string
	Args []any
}

// journal records invocations of test actions.
type journal struct {
	calls []call
}

func (j *journal) action(name string, arity int) *action.Action {
	return action.MustNew(name, "", arity, func(_ context.Context, args ...any) error {
		j.calls = append(j.calls, call{Name: name, Args: args})
		return nil
	})
}

// triggers returns the canonical trigger strings of bs.
func triggers(bs []Binding) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Trigger.String()
	}
	return out
}

// labels returns "trigger=label" for each binding.
func labels(bs []Binding) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Trigger.String() + "=" + b.Entry.Label()
	}
	return out
}

func mustLookup(t *testing.T, m *Map, spec string) Entry {
	t.Helper()
	e, ok := m.Lookup(key.MustParse(spec))
	if !ok {
		t.Fatalf("Lookup(%q) not found in %s", spec, m)
	}
	return e
}
