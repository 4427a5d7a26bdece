package actionmap

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/google/go-cmp/cmp"
)

func TestTransformNoValueIsIdentity(t *testing.T) {
	j := &journal{}
	m := New("table").Bind("a", j.action("table.align", 0))

	got, err := Transform(m, NoValue, nil)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got != m {
		t.Error("Transform(m, NoValue) did not return m itself")
	}
}

func TestTransformBindsValue(t *testing.T) {
	j := &journal{}
	parent := New("thing").Bind("w", j.action("thing.copy", 1))
	m := New("url").Bind("RET", j.action("url.browse", 1)).Bind("h", j.action("url.host", 1))
	m.SetParent(parent)

	tm, err := Transform(m, "https://x.org", nil)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if tm == m || tm.Parent() != nil {
		t.Fatal("Transform() should return a new parentless map")
	}
	if diff := cmp.Diff([]string{"RET", "h", "w"}, triggers(tm.Entries())); diff != "" {
		t.Errorf("triggers mismatch (-want +got):\n%s", diff)
	}

	// Invoking each transformed entry equals invoking the original with the
	// value as first argument.
	ctx := context.Background()
	for _, b := range m.Effective() {
		te, ok := tm.Lookup(b.Trigger)
		if !ok {
			t.Fatalf("transformed map lacks %s", b.Trigger)
		}
		j.calls = nil
		if err := b.Entry.Invoker().Invoke(ctx, "https://x.org"); err != nil {
			t.Fatal(err)
		}
		direct := j.calls
		j.calls = nil
		if err := te.Invoker().Invoke(ctx); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(direct, j.calls); diff != "" {
			t.Errorf("%s: transformed call differs (-direct +transformed):\n%s", b.Trigger, diff)
		}
	}
}

func TestTransformDoesNotMutate(t *testing.T) {
	j := &journal{}
	reg := NewRegistry()
	xref := New("xref").Bind(".", j.action("xref.definition", 1))
	_ = reg.Register(xref)
	sub := New("").Bind("x", j.action("sub.x", 1))
	parent := New("thing").Bind("w", j.action("thing.copy", 1))
	m := New("function").Bind("RET", j.action("symbol.describe", 1)).BindNamed(".", "xref").BindMap("s", sub)
	m.SetParent(parent)

	before := map[*Map][]string{
		m: labels(m.Entries()), xref: labels(xref.Entries()),
		sub: labels(sub.Entries()), parent: labels(parent.Entries()),
	}
	origRET := mustLookup(t, m, "RET").Invoker()

	if _, err := Transform(m, "main", reg); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	for mm, want := range before {
		if diff := cmp.Diff(want, labels(mm.Entries())); diff != "" {
			t.Errorf("%s changed (-before +after):\n%s", mm, diff)
		}
	}
	if m.Parent() != parent {
		t.Error("Transform() changed the parent")
	}
	if _, bound := mustLookup(t, m, "RET").Invoker().(*action.Bound); bound {
		t.Error("Transform() replaced the original leaf")
	}
	if mustLookup(t, m, "RET").Invoker() != origRET {
		t.Error("original leaf identity changed")
	}
}

func TestTransformNested(t *testing.T) {
	j := &journal{}
	reg := NewRegistry()
	_ = reg.Register(New("xref").Bind(".", j.action("xref.definition", 1)).Bind("r", j.action("xref.references", 1)))
	m := New("function").BindNamed(".", "xref")

	tm, err := Transform(m, "main", reg)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	prefix := mustLookup(t, tm, ".")
	if prefix.Kind() != EntrySubmap {
		t.Fatalf("named entry became %v, want submap", prefix.Kind())
	}
	leaf := mustLookup(t, prefix.Map(), "r")
	if err := leaf.Invoker().Invoke(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []call{{Name: "xref.references", Args: []any{"main"}}}
	if diff := cmp.Diff(want, j.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformSharedSubmapIsNotACycle(t *testing.T) {
	j := &journal{}
	shared := New("shared").Bind("x", j.action("x", 1))
	m := New("m").BindMap("a", shared).BindMap("b", shared)

	if _, err := Transform(m, 1, nil); err != nil {
		t.Errorf("Transform() error = %v, want nil for a shared submap", err)
	}
}

func TestTransformMalformed(t *testing.T) {
	j := &journal{}

	loop := New("loop").Bind("x", j.action("x", 1))
	loop.Define(key.MustParse("l"), Submap(loop))

	reg := NewRegistry()
	selfNamed := New("self").BindNamed("n", "self")
	_ = reg.Register(selfNamed)

	dangling := New("dangling").BindNamed(".", "nowhere")

	tests := []struct {
		name string
		m    *Map
		want error
	}{
		{"direct cycle", loop, ErrCycle},
		{"named cycle", selfNamed, ErrCycle},
		{"dangling name", dangling, ErrUndefinedMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transform(tt.m, "v", reg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Transform() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Transform() error = %v does not wrap ErrMalformed", err)
			}
		})
	}
}
