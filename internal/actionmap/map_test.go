package actionmap

import (
	"errors"
	"testing"

	"github.com/dshills/atpoint/internal/input/key"
	"github.com/google/go-cmp/cmp"
)

func TestDefineKeepsOrderAndOverwrites(t *testing.T) {
	j := &journal{}
	m := New("m")
	m.Bind("b", j.action("one", 0))
	m.Bind("a", j.action("two", 0))
	m.Bind("b", j.action("three", 0))

	if diff := cmp.Diff([]string{"b=three", "a=two"}, labels(m.Entries())); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestDefinePanicsOnInvalidEntry(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Define() should panic on a zero entry")
		}
	}()
	New("m").Define(key.MustParse("a"), Entry{})
}

func TestLookupUsesParent(t *testing.T) {
	j := &journal{}
	parent := New("thing").Bind("w", j.action("thing.copy", 1)).Bind("x", j.action("thing.x", 1))
	child := New("url").Bind("RET", j.action("url.browse", 1)).Bind("x", j.action("url.x", 1))
	child.SetParent(parent)

	if got := mustLookup(t, child, "w").Label(); got != "thing.copy" {
		t.Errorf("Lookup(w) = %q, want thing.copy", got)
	}
	if got := mustLookup(t, child, "x").Label(); got != "url.x" {
		t.Errorf("Lookup(x) = %q, want url.x (child shadows parent)", got)
	}
	if _, ok := child.Lookup(key.MustParse("q")); ok {
		t.Error("Lookup(q) found a binding")
	}
	if _, ok := child.LookupLocal(key.MustParse("w")); ok {
		t.Error("LookupLocal(w) should not consult the parent")
	}

	// Last write wins.
	other := New("other").Bind("w", j.action("other.w", 1))
	child.SetParent(other)
	if got := mustLookup(t, child, "w").Label(); got != "other.w" {
		t.Errorf("after SetParent, Lookup(w) = %q, want other.w", got)
	}
}

func TestEffective(t *testing.T) {
	j := &journal{}
	grand := New("g").Bind("z", j.action("g.z", 0)).Bind("a", j.action("g.a", 0))
	parent := New("p").Bind("y", j.action("p.y", 0)).Bind("a", j.action("p.a", 0))
	parent.SetParent(grand)
	child := New("c").Bind("a", j.action("c.a", 0)).Bind("b", j.action("c.b", 0))
	child.SetParent(parent)

	want := []string{"a=c.a", "b=c.b", "y=p.y", "z=g.z"}
	if diff := cmp.Diff(want, labels(child.Effective())); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectiveStopsOnParentLoop(t *testing.T) {
	j := &journal{}
	a := New("a").Bind("1", j.action("a1", 0))
	b := New("b").Bind("2", j.action("b2", 0))
	a.SetParent(b)
	b.SetParent(a)

	if diff := cmp.Diff([]string{"1", "2"}, triggers(a.Effective())); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := a.Lookup(key.MustParse("3")); ok {
		t.Error("Lookup() found an unbound key in a looped chain")
	}
}

func TestSetCreatesPrefixes(t *testing.T) {
	j := &journal{}
	m := New("m")
	m.Bind("C-c t", j.action("t", 0))
	m.Bind("C-c u", j.action("u", 0))

	prefix := mustLookup(t, m, "C-c")
	if prefix.Kind() != EntrySubmap {
		t.Fatalf("C-c kind = %v, want submap", prefix.Kind())
	}
	if diff := cmp.Diff([]string{"t=t", "u=u"}, labels(prefix.Map().Entries())); diff != "" {
		t.Errorf("prefix entries mismatch (-want +got):\n%s", diff)
	}

	err := m.Set(key.MustParseSequence("C-c t x"), Leaf(j.action("x", 0)))
	if !errors.Is(err, ErrNotPrefix) {
		t.Errorf("Set() through a leaf error = %v, want ErrNotPrefix", err)
	}
	if err := m.Set(key.NewSequence(), Leaf(j.action("x", 0))); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("Set() with empty sequence error = %v, want ErrInvalidEntry", err)
	}
	if err := m.Set(key.MustParseSequence("q"), Entry{}); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("Set() with zero entry error = %v, want ErrInvalidEntry", err)
	}
}

func TestBindPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"bad spec", func() { New("m").BindNamed("<nope>", "x") }},
		{"nil invoker", func() { New("m").Bind("a", nil) }},
		{"through named", func() { New("m").BindNamed(".", "xref").BindNamed(". r", "y") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestLookupSequence(t *testing.T) {
	j := &journal{}
	reg := NewRegistry()
	xref := New("xref").Bind(".", j.action("xref.definition", 1)).Bind("r", j.action("xref.references", 1))
	if err := reg.Register(xref); err != nil {
		t.Fatal(err)
	}
	fn := New("function").Bind("RET", j.action("symbol.describe", 1)).BindNamed(".", "xref")

	tests := []struct {
		seq  string
		want string
	}{
		{"RET", "symbol.describe"},
		{". r", "xref.references"},
		{". .", "xref.definition"},
		{".", "+xref"},
		{"q", ""},
		{". q", ""},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			e, err := fn.LookupSequence(key.MustParseSequence(tt.seq), reg)
			if err != nil {
				t.Fatalf("LookupSequence() error = %v", err)
			}
			if got := e.Label(); got != tt.want {
				t.Errorf("LookupSequence(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}

	if _, err := fn.LookupSequence(key.MustParseSequence("RET x"), reg); !errors.Is(err, ErrNotPrefix) {
		t.Errorf("LookupSequence through leaf error = %v, want ErrNotPrefix", err)
	}
	if _, err := fn.LookupSequence(key.MustParseSequence(". r"), nil); !errors.Is(err, ErrUndefinedMap) {
		t.Errorf("LookupSequence without registry error = %v, want ErrUndefinedMap", err)
	}
}

func TestNoValue(t *testing.T) {
	if !IsNoValue(NoValue) {
		t.Error("IsNoValue(NoValue) = false")
	}
	for _, v := range []any{nil, "", 0, []string{"x"}} {
		if IsNoValue(v) {
			t.Errorf("IsNoValue(%#v) = true", v)
		}
	}
}
