package kinds

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/target"
)

func TestNewSet(t *testing.T) {
	s := newSet(t)

	if diff := cmp.Diff(target.Kinds(), s.Detectors.Kinds()); diff != "" {
		t.Errorf("detector order mismatch (-want +got):\n%s", diff)
	}
	if err := s.Maps.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	want := slices.Clone(stickyActions)
	slices.Sort(want)
	if diff := cmp.Diff(want, s.Actions.Sticky()); diff != "" {
		t.Errorf("Sticky() mismatch (-want +got):\n%s", diff)
	}

	for _, tbl := range kindTables {
		m, ok := s.Map(tbl.kind)
		if !ok {
			t.Errorf("Map(%s) missing", tbl.kind)
			continue
		}
		if m.Len() != len(tbl.keys) {
			t.Errorf("Map(%s).Len() = %d, want %d", tbl.kind, m.Len(), len(tbl.keys))
		}
	}
}

func TestActionArity(t *testing.T) {
	s := newSet(t)
	for _, tbl := range kindTables {
		want := 1
		if noValueKinds[tbl.kind] {
			want = 0
		}
		for _, b := range tbl.keys {
			if b.action == "" {
				continue
			}
			a := s.Actions.MustGet(b.action)
			if a.Arity() != want {
				t.Errorf("%s in %s: arity %d, want %d", b.action, tbl.kind, a.Arity(), want)
			}
		}
	}
}

func TestSharedMaps(t *testing.T) {
	s := newSet(t)

	url, _ := s.Map(target.KindURL)
	e, ok := url.Lookup(key.MustParse("w"))
	if !ok || e.Invoker().Name() != ActionThingCopy {
		t.Errorf("url w = %v, want %s through the thing parent", e, ActionThingCopy)
	}
	if _, ok := url.LookupLocal(key.MustParse("w")); ok {
		t.Error("url binds w locally, want it inherited")
	}

	for _, kind := range []target.Kind{target.KindFunction, target.KindVariable} {
		m, _ := s.Map(kind)
		e, ok := m.Lookup(key.MustParse("."))
		if !ok || e.Kind() != actionmap.EntryNamed || e.Name() != MapXref {
			t.Errorf("%s . = %v, want named %s", kind, e, MapXref)
		}
	}
}

func TestBind(t *testing.T) {
	s := newSet(t)
	upcase := s.Actions.MustGet(ActionRegionUpcase)

	if err := s.Bind("region", "C-c u", ActionRegionUpcase); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	m, _ := s.Map(target.KindRegion)
	e, err := m.LookupSequence(key.MustParseSequence("C-c u"), s.Maps)
	if err != nil || e.Invoker() != action.Invoker(upcase) {
		t.Errorf("LookupSequence(C-c u) = %v, %v", e, err)
	}

	if err := s.Bind(MapThing, "y", ActionThingCopy); err != nil {
		t.Errorf("Bind(thing) error = %v", err)
	}

	tests := []struct {
		name           string
		mapName, spec  string
		actionName     string
		want           error
		wantSuggestion string
	}{
		{"unknown map", "regoin", "u", ActionRegionUpcase, ErrUnknownMap, `"region"`},
		{"unknown action", "region", "u", "region.upcas", action.ErrUnknownAction, ActionRegionUpcase},
		{"arity", "heading", "u", ActionRegionUpcase, ErrArityMismatch, ""},
		{"bad spec", "region", "<nope>", ActionRegionUpcase, key.ErrInvalidSpec, ""},
		{"prefix conflict", "region", "u x", ActionRegionUpcase, actionmap.ErrNotPrefix, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Bind(tt.mapName, tt.spec, tt.actionName)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Bind() error = %v, want %v", err, tt.want)
			}
			if tt.wantSuggestion != "" && !strings.Contains(err.Error(), tt.wantSuggestion) {
				t.Errorf("Bind() error = %q, want suggestion %s", err, tt.wantSuggestion)
			}
		})
	}
}

func TestNewDetectorUnknownKind(t *testing.T) {
	if _, err := NewDetector(target.KindNone, actionmap.New("x")); !errors.Is(err, target.ErrUnknownKind) {
		t.Errorf("NewDetector(none) error = %v, want ErrUnknownKind", err)
	}
}

func TestMapNames(t *testing.T) {
	s := newSet(t)
	names := s.MapNames()
	if !slices.IsSorted(names) {
		t.Errorf("MapNames() = %v, not sorted", names)
	}
	if len(names) != len(kindTables)+2 {
		t.Errorf("len(MapNames()) = %d, want %d", len(names), len(kindTables)+2)
	}
}
